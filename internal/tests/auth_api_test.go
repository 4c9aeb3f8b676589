// internal/tests/auth_api_test.go
package tests

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/store"
)

type AuthAPITestSuite struct {
	suite.Suite
	cfg    *config.Config
	st     *store.Store
	router *gin.Engine
}

func (suite *AuthAPITestSuite) SetupTest() {
	suite.cfg = testConfig()
	suite.st = store.New()
	suite.router = buildRouter(suite.st, suite.cfg)
}

func (suite *AuthAPITestSuite) TestLoginSuccess() {
	w := doJSON(suite.router, "POST", "/v1/auth/login", map[string]interface{}{
		"email":    "admin@rmagrichem.com",
		"password": "admin",
	}, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	auth := data["auth"].(map[string]interface{})
	assert.NotEmpty(suite.T(), auth["access_token"])
	assert.Equal(suite.T(), "Bearer", auth["token_type"])

	assert.True(suite.T(), suite.st.Session.IsAuthenticated())
}

func (suite *AuthAPITestSuite) TestLoginWrongPassword() {
	w := doJSON(suite.router, "POST", "/v1/auth/login", map[string]interface{}{
		"email":    "admin@rmagrichem.com",
		"password": "nope",
	}, nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	response := decodeBody(suite.T(), w)
	assert.False(suite.T(), response["success"].(bool))

	apiErr := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "INVALID_CREDENTIALS", apiErr["code"])

	assert.False(suite.T(), suite.st.Session.IsAuthenticated())
}

func (suite *AuthAPITestSuite) TestLoginMalformedEmail() {
	w := doJSON(suite.router, "POST", "/v1/auth/login", map[string]interface{}{
		"email":    "not-an-email",
		"password": "admin",
	}, nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthAPITestSuite) TestMeRequiresToken() {
	w := doJSON(suite.router, "GET", "/v1/auth/me", nil, nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthAPITestSuite) TestMeWithToken() {
	token := adminToken(suite.T(), suite.cfg, suite.st)

	w := doJSON(suite.router, "GET", "/v1/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := decodeBody(suite.T(), w)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "admin@rmagrichem.com", data["email"])
	assert.Equal(suite.T(), true, data["is_authenticated"])
}

func (suite *AuthAPITestSuite) TestLogoutResetsSession() {
	token := adminToken(suite.T(), suite.cfg, suite.st)
	assert.True(suite.T(), suite.st.Session.IsAuthenticated())

	w := doJSON(suite.router, "POST", "/v1/auth/logout", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.False(suite.T(), suite.st.Session.IsAuthenticated())
}

func (suite *AuthAPITestSuite) TestGarbageTokenRejected() {
	w := doJSON(suite.router, "GET", "/v1/auth/me", nil, map[string]string{
		"Authorization": "Bearer not.a.token",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestAuthAPISuite(t *testing.T) {
	suite.Run(t, new(AuthAPITestSuite))
}
