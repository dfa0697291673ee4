package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
	"github.com/jhoicas/epc-inventory-api/internal/domain/repository"
	apphttp "github.com/jhoicas/epc-inventory-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/epc-inventory-api/pkg/jwt"
	"github.com/jhoicas/epc-inventory-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCompanyID  = "00000000-0000-0000-0000-000000000002"
	testAdminID    = "00000000-0000-0000-0000-000000000001"
	testClerkID    = "00000000-0000-0000-0000-000000000003"
	testWarehouseA = "00000000-0000-0000-0000-00000000000a"
	testWarehouseB = "00000000-0000-0000-0000-00000000000b"
	testIssuer     = "epc-inventory-test"
	testExpMin     = 60
	protectedRoute = "/protected/:warehouseId"
)

type stubUsers struct {
	repository.UserRepository
	byID map[string]*entity.User
}

func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return s.byID[id], nil
}

type stubRoles struct {
	repository.RoleRepository
	byName map[string]*entity.Role
	err    error
}

func (s *stubRoles) GetByName(_ context.Context, companyID, name string) (*entity.Role, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byName[companyID+"/"+name], nil
}

type stubWarehouses struct {
	repository.WarehouseRepository
}

func (stubWarehouses) GetByID(_ context.Context, companyID, id string) (*entity.Warehouse, error) {
	if companyID != testCompanyID || (id != testWarehouseA && id != testWarehouseB) {
		return nil, nil
	}
	return &entity.Warehouse{ID: id, CompanyID: companyID, Name: "Bodega " + id[len(id)-1:]}, nil
}

type stubZones struct{ repository.ZoneRepository }

func newUsers() *stubUsers {
	return &stubUsers{byID: map[string]*entity.User{
		testAdminID: {ID: testAdminID, CompanyID: testCompanyID, Role: entity.RoleAdmin, Branch: entity.CompanyBranch(testCompanyID)},
		testClerkID: {ID: testClerkID, CompanyID: testCompanyID, Role: "clerk", Branch: entity.WarehouseBranch(testWarehouseA)},
	}}
}

func newRoles(clerkPaths ...string) *stubRoles {
	return &stubRoles{byName: map[string]*entity.Role{
		testCompanyID + "/" + entity.RoleAdmin: {Name: entity.RoleAdmin, CompanyID: testCompanyID, Paths: []string{entity.WildcardPath}},
		testCompanyID + "/clerk":               {Name: "clerk", CompanyID: testCompanyID, Paths: clerkPaths},
	}}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y resolver el Principal
//   - RequirePermission sobre la plantilla de la ruta
//   - RequireWarehouse sobre :warehouseId
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(roles *stubRoles) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop())})
	scope := access.NewScopeResolver(stubWarehouses{}, stubZones{})
	app.Get(protectedRoute,
		apphttp.AuthMiddleware(testJWTSecret, access.NewIdentityResolver(newUsers())),
		apphttp.RequirePermission(access.NewPermissionGate(roles)),
		apphttp.RequireWarehouse(scope, apphttp.Param("warehouseId")),
		func(c *fiber.Ctx) error {
			body := fiber.Map{
				"ok":         true,
				"user_id":    apphttp.GetUserID(c),
				"company_id": apphttp.GetCompanyID(c),
			}
			if w, ok := apphttp.ResolvedWarehouse(c); ok {
				body["warehouse_id"] = w.ID
				body["warehouse_name"] = w.Name
			}
			return c.Status(fiber.StatusOK).JSON(body)
		},
	)
	return app
}

// tokenFor genera un JWT para el usuario indicado.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET sobre la bodega indicada.
func doRequest(t *testing.T, app *fiber.App, authHeader, warehouseID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected/"+warehouseID, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles()), "", testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "UNAUTHORIZED")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles()), "Token abc", testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles()), "Bearer token.invalido.aqui", testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioEliminado_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles()), tokenFor(t, "00000000-0000-0000-0000-0000000000ff"), testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token válido de un usuario que ya no existe no autentica")
}

func TestAuthMiddleware_ResuelvePrincipal(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles()), tokenFor(t, testAdminID), testWarehouseB)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAdminID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, testWarehouseB, body["warehouse_id"])
	assert.Equal(t, "Bodega b", body["warehouse_name"], "el handler recibe la bodega completa")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_RutaExactaPermitida(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles(protectedRoute)), tokenFor(t, testClerkID), testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el rol incluye la plantilla de la ruta, no la URL concreta")
}

func TestRequirePermission_RutaNoIncluida_Retorna403(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles("/protected")), tokenFor(t, testClerkID), testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "no hay coincidencia por prefijo")
	assert.Contains(t, readBody(t, resp), "FORBIDDEN")
}

func TestRequirePermission_RolInexistente_Retorna403(t *testing.T) {
	roles := newRoles()
	delete(roles.byName, testCompanyID+"/clerk")

	resp := doRequest(t, buildTestApp(roles), tokenFor(t, testClerkID), testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_FalloDeRepositorio_Retorna502(t *testing.T) {
	roles := newRoles()
	roles.err = assert.AnError

	resp := doRequest(t, buildTestApp(roles), tokenFor(t, testAdminID), testWarehouseA)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), assert.AnError.Error(), "el detalle interno no llega al cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireWarehouse
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireWarehouse_UsuarioDeBodegaEnOtraBodega_Retorna403(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles(protectedRoute)), tokenFor(t, testClerkID), testWarehouseB)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Invalid warehouse")
}

func TestRequireWarehouse_BodegaInexistente_Retorna404(t *testing.T) {
	resp := doRequest(t, buildTestApp(newRoles()), tokenFor(t, testAdminID), "00000000-0000-0000-0000-0000000000cc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
