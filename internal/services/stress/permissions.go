package stress

import (
	"context"
	"sync"

	"github.com/mcoot/mindcare/internal/model"
)

// Permissions grants access to capture devices. Acquire returns a release
// function on success or an error when access is refused.
type Permissions interface {
	Acquire(ctx context.Context, device model.Device) (func(), error)
}

// StaticPermissions grants or refuses each device according to fixed flags.
// It counts open handles so tests can check that devices are released.
type StaticPermissions struct {
	Camera     bool
	Microphone bool

	mu   sync.Mutex
	open int
}

// NewStaticPermissions creates a StaticPermissions
func NewStaticPermissions(camera, microphone bool) *StaticPermissions {
	return &StaticPermissions{Camera: camera, Microphone: microphone}
}

// Acquire implements Permissions
func (p *StaticPermissions) Acquire(ctx context.Context, device model.Device) (func(), error) {
	granted := false
	switch device {
	case model.DeviceNone:
		return func() {}, nil
	case model.DeviceCamera:
		granted = p.Camera
	case model.DeviceMicrophone:
		granted = p.Microphone
	}
	if !granted {
		return nil, model.ErrPermissionDenied
	}

	p.mu.Lock()
	p.open++
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			p.open--
			p.mu.Unlock()
		})
	}, nil
}

// Open returns the number of unreleased handles
func (p *StaticPermissions) Open() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}
