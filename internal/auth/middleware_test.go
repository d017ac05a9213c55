package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/database/models"
	"calyx-crm-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthMiddlewareTestSuite defines the test suite for the auth middleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *auth.AuthService
	middleware  *auth.AuthMiddleware
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	userRepo := mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewAuthService(userRepo, validator.New(), testSecret, time.Hour)
	suite.middleware = auth.NewAuthMiddleware(suite.authService)

	suite.router = gin.New()
	suite.router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		suite.True(ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	suite.router.GET("/admin", suite.middleware.RequireAuth(), suite.middleware.RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

// TearDownTest cleans up after each test
func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) tokenFor(role models.UserRole) string {
	user := &models.User{
		Email:    "mw@example.com",
		Role:     role,
		IsActive: true,
	}
	user.ID = uuid.New()
	token, err := suite.authService.GenerateJWT(user)
	suite.Require().NoError(err)
	return token
}

func (suite *AuthMiddlewareTestSuite) request(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthValidToken() {
	w := suite.request("/protected", "Bearer "+suite.tokenFor(models.UserRoleUser))
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthMissingHeader() {
	w := suite.request("/protected", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Authorization header is required")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthMalformedHeader() {
	w := suite.request("/protected", "Token abc123")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid authorization header format")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuthBadToken() {
	w := suite.request("/protected", "Bearer not.a.token")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid or expired token")
}

func (suite *AuthMiddlewareTestSuite) TestRequireRoleAllowed() {
	w := suite.request("/admin", "Bearer "+suite.tokenFor(models.UserRoleAdmin))
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestRequireRoleForbidden() {
	w := suite.request("/admin", "Bearer "+suite.tokenFor(models.UserRoleUser))
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "Insufficient permissions")
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
