package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretoPrueba = "secreto-de-pruebas"

func tokenPrueba(t *testing.T, userID uuid.UUID, role string, exp time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"username": "ana",
		"role":     role,
		"exp":      time.Now().Add(exp).Unix(),
		"iat":      time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretoPrueba))
	require.NoError(t, err)
	return token
}

func routerProtegido(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grupo := r.Group("/", JWTAuth(secretoPrueba))
	if len(roles) > 0 {
		grupo.Use(RequireRole(roles...))
	}
	grupo.GET("/recurso", func(c *gin.Context) {
		id := UserUUID(c)
		c.JSON(http.StatusOK, gin.H{"usuario": id})
	})
	return r
}

func pedir(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_SinHeader(t *testing.T) {
	w := pedir(routerProtegido(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Autenticación requerida.")
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	token := tokenPrueba(t, uuid.New(), "admin", -time.Hour)
	w := pedir(routerProtegido(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido o expirado.")
}

func TestJWTAuth_FirmaAjena(t *testing.T) {
	claims := jwt.MapClaims{"user_id": uuid.NewString(), "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	w := pedir(routerProtegido(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_TokenValido(t *testing.T) {
	id := uuid.New()
	token := tokenPrueba(t, id, "admin", time.Hour)

	w := pedir(routerProtegido(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestRequireRole_RolPermitido(t *testing.T) {
	token := tokenPrueba(t, uuid.New(), "contador", time.Hour)
	w := pedir(routerProtegido("admin", "SuperAdmin", "contador"), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RolRechazado(t *testing.T) {
	token := tokenPrueba(t, uuid.New(), "vendedor", time.Hour)
	w := pedir(routerProtegido("admin", "SuperAdmin"), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Permisos insuficientes.")
}
