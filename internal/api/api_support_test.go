package api_test

import (
	"net/http"
	"strings"

	"github.com/mcoot/mindcare/internal/api/apierr"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/services/support"
)

func (s *APISuite) TestResources() {
	rr := s.request(http.MethodGet, "/api/v1/resources", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)
	var all response.ResourceList
	s.decode(rr, &all)
	s.Len(all.Resources, 6)
	s.Equal(6, all.Total)

	rr = s.request(http.MethodGet, "/api/v1/resources?q=focus&category=mindfulness", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)
	var filtered response.ResourceList
	s.decode(rr, &filtered)
	s.Require().Len(filtered.Resources, 1)
	s.Equal("6", filtered.Resources[0].ID)
	s.True(filtered.Resources[0].Premium)
	s.Equal(6, filtered.Total)

	rr = s.request(http.MethodGet, "/api/v1/resources?type=podcast", nil, "")
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal(apierr.CodeInvalidRequest, s.errorCode(rr))
}

func (s *APISuite) TestResourceByID() {
	rr := s.request(http.MethodGet, "/api/v1/resources/2", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)
	var res response.Resource
	s.decode(rr, &res)
	s.Equal("Managing Test Anxiety", res.Title)
	s.Equal("article", res.Type)

	rr = s.request(http.MethodGet, "/api/v1/resources/99", nil, "")
	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal(apierr.CodeResourceNotFound, s.errorCode(rr))
}

func (s *APISuite) TestEmergencyDirectory() {
	rr := s.request(http.MethodGet, "/api/v1/emergency", nil, "")
	s.Require().Equal(http.StatusOK, rr.Code)

	var dir response.Emergency
	s.decode(rr, &dir)
	s.Len(dir.Helplines, 4)
	s.Len(dir.CrisisResources, 3)
	s.Len(dir.CopingStrategies, 6)
	s.Equal("112", dir.Helplines[0].Number)
}

func (s *APISuite) TestEmergencyCall() {
	profileID := s.newProfile()

	rr := s.request(http.MethodPost, "/api/v1/emergency/call", map[string]string{"number": "18005990019"}, profileID)
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var call response.Call
	s.decode(rr, &call)
	s.Equal("Mental Health Helpline", call.Helpline.Name)
	s.Equal(support.CallDuration, call.EndsAt.Sub(call.StartedAt))

	rr = s.request(http.MethodPost, "/api/v1/emergency/call", map[string]string{"number": "112"}, profileID)
	s.Equal(http.StatusConflict, rr.Code)
	s.Equal(apierr.CodeCallInProgress, s.errorCode(rr))

	s.app.MockClock.Advance(support.CallDuration)
	rr = s.request(http.MethodPost, "/api/v1/emergency/call", map[string]string{"number": "112"}, profileID)
	s.Equal(http.StatusCreated, rr.Code)

	rr = s.request(http.MethodPost, "/api/v1/emergency/call", map[string]string{"number": "555"}, s.newProfile())
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal(apierr.CodeInvalidRequest, s.errorCode(rr))
}

func (s *APISuite) TestSettingsRequireSession() {
	profileID := s.newProfile()

	rr := s.request(http.MethodGet, "/api/v1/profile/settings", nil, profileID)
	s.Equal(http.StatusUnauthorized, rr.Code)
	s.Equal(apierr.CodeUnauthorized, s.errorCode(rr))
}

func (s *APISuite) TestSettings() {
	profileID := s.newProfile()
	s.Require().Equal(http.StatusCreated, s.signup(profileID, "Asha", "asha@uni.edu", "secret123").Code)

	rr := s.request(http.MethodGet, "/api/v1/profile/settings", nil, profileID)
	s.Require().Equal(http.StatusOK, rr.Code)
	var defaults response.Settings
	s.decode(rr, &defaults)
	s.True(defaults.Preferences.EmailNotifications)
	s.False(defaults.Preferences.PushNotifications)
	s.Nil(defaults.UpdatedAt)

	body := map[string]any{
		"bio":        "Final year",
		"university": "IIT Delhi",
		"emergency_contact": map[string]string{
			"name":  "Meera",
			"phone": "+91 98765 43210",
		},
	}
	rr = s.request(http.MethodPut, "/api/v1/profile/settings", body, profileID)
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	var saved response.Settings
	s.decode(rr, &saved)
	s.Equal("Meera", saved.EmergencyContact.Name)
	s.True(saved.Preferences.EmailNotifications, "Preferences kept when omitted")
	s.NotNil(saved.UpdatedAt)

	body["preferences"] = map[string]bool{"push_notifications": true}
	rr = s.request(http.MethodPut, "/api/v1/profile/settings", body, profileID)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.decode(rr, &saved)
	s.True(saved.Preferences.PushNotifications)
	s.False(saved.Preferences.EmailNotifications)
	s.Equal("IIT Delhi", saved.University)
}

func (s *APISuite) TestSettingsValidation() {
	profileID := s.newProfile()
	s.Require().Equal(http.StatusCreated, s.signup(profileID, "Asha", "asha@uni.edu", "secret123").Code)

	body := map[string]any{"bio": strings.Repeat("a", 501)}
	rr := s.request(http.MethodPut, "/api/v1/profile/settings", body, profileID)
	s.Equal(http.StatusBadRequest, rr.Code)

	var resp apierr.ErrorResponse
	s.decode(rr, &resp)
	s.Contains(resp.Error.Message, "bio")
}
