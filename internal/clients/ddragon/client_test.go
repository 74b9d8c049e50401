package ddragon_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lol-cast-engine/internal/clients/ddragon"
	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
	casterr "github.com/KirkDiggler/lol-cast-engine/internal/errors"
)

const velkozJSON = `{
  "type": "champion",
  "version": "14.1.1",
  "data": {
    "Velkoz": {
      "id": "Velkoz",
      "name": "Vel'Koz",
      "spells": [
        {"id": "VelkozQ", "cooldown": [7, 6.5, 6, 5.5, 5], "cost": [40, 45, 50, 55, 60], "costType": " Mana", "maxrank": 5},
        {"id": "VelkozW", "cooldown": [1.5, 1.5, 1.5, 1.5, 1.5], "cost": [30, 35, 40, 45, 50], "costType": " Mana", "maxrank": 5},
        {"id": "VelkozE", "cooldown": [16, 15, 14, 13, 12], "cost": [50, 55, 60, 65, 70], "costType": " Mana", "maxrank": 5},
        {"id": "VelkozR", "cooldown": [120, 100, 80], "cost": [100, 100, 100], "costType": " Mana", "maxrank": 3}
      ]
    }
  }
}`

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	mux    *http.ServeMux
	client ddragon.Client
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)

	var err error
	s.client, err = ddragon.New(&ddragon.Config{BaseURL: s.server.URL + "/"})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respond(path string, status int, body string) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (s *ClientTestSuite) TestLatestVersion() {
	s.respond("/api/versions.json", http.StatusOK, `["14.2.1", "14.1.1"]`)

	version, err := s.client.LatestVersion(context.Background())
	s.Require().NoError(err)
	s.Equal("14.2.1", version)
}

func (s *ClientTestSuite) TestLatestVersion_Empty() {
	s.respond("/api/versions.json", http.StatusOK, `[]`)

	_, err := s.client.LatestVersion(context.Background())
	s.True(casterr.IsValidation(err))
}

func (s *ClientTestSuite) TestLatestVersion_ServerError() {
	s.respond("/api/versions.json", http.StatusBadGateway, `oops`)

	_, err := s.client.LatestVersion(context.Background())
	s.True(casterr.IsUnavailable(err))
}

func (s *ClientTestSuite) TestGetChampion() {
	s.respond("/cdn/14.1.1/data/en_US/champion/Velkoz.json", http.StatusOK, velkozJSON)

	champ, err := s.client.GetChampion(context.Background(), "14.1.1", "Velkoz")
	s.Require().NoError(err)

	s.Equal("Velkoz", champ.ID)
	s.Equal("Vel'Koz", champ.Name)
	s.Equal("14.1.1", champ.Version)
	s.Equal(6500*time.Millisecond, champ.Costs.CooldownAt(champion.Q, 2))
	s.Equal(1500*time.Millisecond, champ.Costs.CooldownAt(champion.W, 1))
	s.Equal(80*time.Second, champ.Costs.CooldownAt(champion.R, 3))
	s.Equal(45, champ.Costs.ManaCostAt(champion.Q, 2))
	s.Equal(100, champ.Costs.ManaCostAt(champion.R, 1))
}

func (s *ClientTestSuite) TestGetChampion_CaseInsensitiveID() {
	s.respond("/cdn/14.1.1/data/en_US/champion/velkoz.json", http.StatusOK, velkozJSON)

	champ, err := s.client.GetChampion(context.Background(), "14.1.1", "velkoz")
	s.Require().NoError(err)
	s.Equal("Velkoz", champ.ID)
}

func (s *ClientTestSuite) TestGetChampion_NotFound() {
	_, err := s.client.GetChampion(context.Background(), "14.1.1", "Nobody")
	s.True(casterr.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetChampion_UnexpectedSchema() {
	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>`},
		{name: "champion missing", body: `{"data": {"Ahri": {"id": "Ahri", "spells": []}}}`},
		{name: "three spells", body: `{"data": {"Velkoz": {"id": "Velkoz", "spells": [
			{"id": "Q", "cooldown": [1]}, {"id": "W", "cooldown": [1]}, {"id": "E", "cooldown": [1]}]}}}`},
		{name: "mismatched ranks", body: `{"data": {"Velkoz": {"id": "Velkoz", "spells": [
			{"id": "Q", "cooldown": [1, 2], "cost": [10]}, {"id": "W", "cooldown": [1]},
			{"id": "E", "cooldown": [1]}, {"id": "R", "cooldown": [1]}]}}}`},
		{name: "no cooldown ranks", body: `{"data": {"Velkoz": {"id": "Velkoz", "spells": [
			{"id": "Q", "cooldown": []}, {"id": "W", "cooldown": [1]},
			{"id": "E", "cooldown": [1]}, {"id": "R", "cooldown": [1]}]}}}`},
	}

	for i, tc := range testCases {
		s.Run(tc.name, func() {
			version := "1." + string(rune('a'+i))
			s.respond("/cdn/"+version+"/data/en_US/champion/Velkoz.json", http.StatusOK, tc.body)

			_, err := s.client.GetChampion(context.Background(), version, "Velkoz")
			s.Require().Error(err)
			s.True(casterr.IsValidation(err), "got %v", err)
		})
	}
}

func (s *ClientTestSuite) TestGetChampion_RequiresArguments() {
	_, err := s.client.GetChampion(context.Background(), "", "Velkoz")
	s.Equal(casterr.CodeInvalidArgument, casterr.GetCode(err))

	_, err = s.client.GetChampion(context.Background(), "14.1.1", "")
	s.Equal(casterr.CodeInvalidArgument, casterr.GetCode(err))
}

func TestGetChampion_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := ddragon.New(&ddragon.Config{BaseURL: server.URL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.LatestVersion(context.Background())
	assert.True(t, casterr.IsUnavailable(err))
}
