package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
	apphttp "github.com/aracah/aracah-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de colaboradores
// ──────────────────────────────────────────────────────────────────────────────

type llamada struct {
	kind string // rowsets | row | exec
	proc string
	args []any
}

// stubDB implementa gateway.Caller registrando cada invocación, para poder
// afirmar qué procedimiento se llamó (o que no se llamó ninguno).
type stubDB struct {
	rowsets map[string]gateway.Result
	rows    map[string]gateway.Row
	errs    map[string]error
	calls   []llamada
}

func newStubDB() *stubDB {
	return &stubDB{
		rowsets: map[string]gateway.Result{},
		rows:    map[string]gateway.Row{},
		errs:    map[string]error{},
	}
}

func (s *stubDB) Rowsets(_ context.Context, proc string, args ...any) (gateway.Result, error) {
	s.calls = append(s.calls, llamada{"rowsets", proc, args})
	if err := s.errs[proc]; err != nil {
		return gateway.Result{}, err
	}
	return s.rowsets[proc], nil
}

func (s *stubDB) Row(_ context.Context, proc string, args ...any) (gateway.Row, error) {
	s.calls = append(s.calls, llamada{"row", proc, args})
	if err := s.errs[proc]; err != nil {
		return nil, err
	}
	if row, ok := s.rows[proc]; ok {
		return row, nil
	}
	return gateway.Row{}, nil
}

func (s *stubDB) Exec(_ context.Context, proc string, args ...any) error {
	s.calls = append(s.calls, llamada{"exec", proc, args})
	return s.errs[proc]
}

// stubDirectory resuelve roles desde un mapa correo→rol y cuenta las
// consultas, para verificar que el 401 corta antes de tocar la BD.
type stubDirectory struct {
	roles   map[string]string
	lookups int
}

func (s *stubDirectory) RoleByEmail(_ context.Context, email string) (string, error) {
	s.lookups++
	return s.roles[email], nil
}

func (s *stubDirectory) PerfilByID(_ context.Context, id int64) (*gateway.Perfil, error) {
	return &gateway.Perfil{IDUsuario: id, Nombre: "Test", Correo: "test@test", NombreRol: "Admin"}, nil
}

func (s *stubDirectory) Roles(context.Context) ([]gateway.RolInfo, error) {
	return []gateway.RolInfo{{IDRol: 1, NombreRol: "Admin"}}, nil
}

func (s *stubDirectory) Transportistas(context.Context) ([]gateway.Transportista, error) {
	return []gateway.Transportista{{IDTransportista: 1, Codigo: "T1", Nombre: "Express", Activo: true}}, nil
}

func (s *stubDirectory) DBName(context.Context) (string, error) { return "aracah_test", nil }

// stubVerifier acepta tokens fijos; cualquier otro es inválido.
type stubVerifier struct {
	tokens map[string]*gateway.Claims
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*gateway.Claims, error) {
	if c, ok := s.tokens[token]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("token desconocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	tokenAdmin    = "tok-admin"
	tokenVendedor = "tok-vendedor"
	tokenCliente  = "tok-cliente"
)

func buildTestApp(db *stubDB) (*fiber.App, *stubDirectory) {
	dir := &stubDirectory{roles: map[string]string{
		"admin@test":    "Admin",
		"vendedor@test": "Vendedor",
		"cliente@test":  "Cliente",
	}}
	verifier := &stubVerifier{tokens: map[string]*gateway.Claims{
		tokenAdmin:    {Subject: "u1", Email: "admin@test", Name: "Admin Test"},
		tokenVendedor: {Subject: "u2", Email: "vendedor@test", Name: "Vendedor Test"},
		tokenCliente:  {Subject: "u3", Email: "cliente@test", Name: "Cliente Test"},
	}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{DB: db, Dir: dir, Verifier: verifier})
	return app, dir
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación y autorización
// ──────────────────────────────────────────────────────────────────────────────

// Sin token el corte es 401 y no se consulta ni el rol ni la base.
func TestRutaProtegida_SinToken_Retorna401SinTocarBD(t *testing.T) {
	db := newStubDB()
	app, dir := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/clientes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token", decodeBody(t, resp)["error"])

	assert.Zero(t, dir.lookups, "no debe resolverse rol sin token")
	assert.Empty(t, db.calls, "no debe llamarse ningún procedimiento")
}

func TestRutaProtegida_TokenInvalido_Retorna401(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/clientes", "token-falso", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", decodeBody(t, resp)["error"])
}

// Rol fuera de la lista → 403 revelando el rol con el que entró.
func TestRequireRole_RolFueraDeLista_403ConRolActual(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/clientes", tokenCliente, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Acceso denegado", body["error"])
	assert.Equal(t, "Cliente", body["rol_actual"])
	assert.Empty(t, db.calls, "el 403 corta antes del procedimiento")
}

// Usuarios es solo admin: un vendedor queda fuera aunque el body sea válido.
func TestUsuarios_VendedorBloqueado(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPut, "/api/usuarios/7", tokenVendedor,
		fiber.Map{"id_rol": 2, "activo": true})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, db.calls)
}

// La comparación de roles es case-insensitive.
func TestRequireRole_CaseInsensitive(t *testing.T) {
	db := newStubDB()
	db.rowsets["sp_clientes_list"] = gateway.Result{Sets: []gateway.Rowset{{}, {}}}
	app, dir := buildTestApp(db)
	dir.roles["admin@test"] = "ADMIN"

	resp := doJSON(t, app, http.MethodGet, "/api/clientes", tokenAdmin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

// Convención items + fila de total (clientes, cotizaciones).
func TestClientesList_EnvolturaPaginada(t *testing.T) {
	db := newStubDB()
	db.rowsets["sp_clientes_list"] = gateway.Result{Sets: []gateway.Rowset{
		{{"id_cliente": int64(3), "nombre": "Ana"}, {"id_cliente": int64(4), "nombre": "Luis"}},
		{{"total": int64(5)}},
	}}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/clientes?page=2&pageSize=2", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["items"], 2)
	assert.EqualValues(t, 5, body["total"])
	assert.EqualValues(t, 2, body["page"])
	assert.EqualValues(t, 2, body["pageSize"])
}

// Convención columna redundante total_count (pedidos, op, materiales, usuarios).
func TestPedidosList_TotalDesdeColumnaRedundante(t *testing.T) {
	db := newStubDB()
	db.rowsets["sp_ped_list"] = gateway.Result{Sets: []gateway.Rowset{
		{{"id_pedido": int64(1), "total_count": int64(42)}},
	}}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/pedidos", tokenVendedor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 42, decodeBody(t, resp)["total"])
}

// Entregas invierte los sets: primero el total, después los items.
func TestEntregasList_SetsInvertidos(t *testing.T) {
	db := newStubDB()
	db.rowsets["sp_ent_list"] = gateway.Result{Sets: []gateway.Rowset{
		{{"total": int64(7)}},
		{{"id_entrega": int64(9)}},
	}}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/entregas", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 7, body["total"])
	assert.Len(t, body["items"], 1)
}

func TestPageParams_ClampDePageSize(t *testing.T) {
	db := newStubDB()
	db.rowsets["sp_clientes_list"] = gateway.Result{}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/clientes?page=0&pageSize=9999", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 100, body["pageSize"])

	call := db.calls[len(db.calls)-1]
	assert.Equal(t, "sp_clientes_list", call.proc)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

// Campos requeridos faltantes → 400 sin tocar la base.
func TestClientesCreate_CamposFaltantes_400SinLlamada(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", tokenAdmin,
		fiber.Map{"email": "x@y.z"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "nombre, id_genero, id_tipo_cliente son obligatorios", decodeBody(t, resp)["error"])
	assert.Empty(t, db.calls, "la validación corta antes del procedimiento")
}

func TestCotizacionesCreate_SinDetalle_400SinLlamada(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/cotizaciones", tokenVendedor,
		fiber.Map{"id_cliente": 10})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, db.calls)
}

func TestGetByID_IdNoNumerico_400(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/clientes/abc", tokenAdmin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, db.calls)
}

func TestGetByID_Inexistente_404(t *testing.T) {
	db := newStubDB()
	db.rowsets["sp_clientes_get"] = gateway.Result{}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/clientes/99", tokenAdmin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Cliente no encontrado", decodeBody(t, resp)["error"])
}

func TestMaterialesKardex_SinCantidad_400(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/materiales/3/entrada", tokenAdmin,
		fiber.Map{"comentario": "sin cantidad"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, db.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación con parámetros de salida
// ──────────────────────────────────────────────────────────────────────────────

// El correlativo lo genera el procedimiento y el handler lo ecoa tal cual.
func TestCotizacionesCreate_DevuelveIdYNumero(t *testing.T) {
	db := newStubDB()
	db.rows["sp_generar_cotizacion"] = gateway.Row{
		"id_cotizacion": int64(55),
		"numero_out":    "COT-0055",
	}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/cotizaciones", tokenVendedor, fiber.Map{
		"id_cliente": 10,
		"detalle":    []fiber.Map{{"id_producto": 1, "cantidad": 2}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 55, body["id_cotizacion"])
	assert.Equal(t, "COT-0055", body["numero"])
}

// Las líneas con id o cantidad no positivos se descartan en silencio; al
// procedimiento llega solo lo válido.
func TestCotizacionesCreate_DescartaLineasInvalidas(t *testing.T) {
	db := newStubDB()
	db.rows["sp_generar_cotizacion"] = gateway.Row{"id_cotizacion": int64(1), "numero_out": "COT-0001"}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/cotizaciones", tokenVendedor, fiber.Map{
		"id_cliente": 10,
		"detalle": []fiber.Map{
			{"id_producto": 5, "cantidad": 2},
			{"id_producto": 0, "cantidad": 3},
			{"id_producto": 7, "cantidad": -1},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	call := db.calls[len(db.calls)-1]
	require.Equal(t, "sp_generar_cotizacion", call.proc)

	jb, ok := call.args[1].(gateway.JSONB)
	require.True(t, ok, "las líneas deben viajar como jsonb")
	lineas, ok := jb.Value.([]dto.LineaDetalle)
	require.True(t, ok)
	require.Len(t, lineas, 1, "debe sobrevivir exactamente una línea")
	assert.EqualValues(t, 5, lineas[0].IDProducto)
	assert.EqualValues(t, 2, lineas[0].Cantidad)
}

// Si todas las líneas son inválidas el lote queda vacío y se rechaza con 400.
func TestPedidoManual_TodasLasLineasInvalidas_400(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/pedidos/manual", tokenAdmin, fiber.Map{
		"id_cliente": 3,
		"lineas":     []fiber.Map{{"id_producto": 0, "cantidad": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Debes enviar al menos una línea", decodeBody(t, resp)["error"])
	assert.Empty(t, db.calls)
}

func TestPedidoManual_CreaConAliasLineas(t *testing.T) {
	db := newStubDB()
	db.rows["sp_ped_crear_manual"] = gateway.Row{"id_pedido_out": int64(12), "numero_out": "PED-0012"}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/pedidos/manual", tokenAdmin, fiber.Map{
		"id_cliente": 3,
		"lineas":     []fiber.Map{{"id_producto": 2, "cantidad": 4}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 12, body["id_pedido"])
	assert.Equal(t, "PED-0012", body["numero"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

// sp_op_try_start señala el fallo con ok_out=false, no con excepción.
func TestOPStart_StockInsuficiente_400ConMensaje(t *testing.T) {
	db := newStubDB()
	db.rows["sp_op_try_start"] = gateway.Row{"ok_out": false, "msg_out": "Stock insuficiente"}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/op/123/start", tokenAdmin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Stock insuficiente", decodeBody(t, resp)["error"])
}

func TestOPStart_Ok_RefrescaHeader(t *testing.T) {
	db := newStubDB()
	db.rows["sp_op_try_start"] = gateway.Row{"ok_out": true, "msg_out": ""}
	db.rowsets["sp_op_get"] = gateway.Result{Sets: []gateway.Rowset{
		{{"id_orden": int64(123), "estado": "INI"}},
	}}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/op/123/start", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	header, ok := body["header"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INI", header["estado"])
}

// El rechazo de una transición por la base (RAISE) se responde como 400 con
// el mensaje del procedimiento.
func TestPedidoTransicion_ErrorDeBase_400ConMensajeDelProc(t *testing.T) {
	db := newStubDB()
	db.errs["sp_cambiar_estado"] = &gateway.ProcError{
		Proc:    "sp_cambiar_estado",
		Message: "Transición PEDIDO PEN→ENT no permitida",
	}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/pedidos/8/to-ent", tokenAdmin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Transición PEDIDO PEN→ENT no permitida", decodeBody(t, resp)["error"])
}

func TestPedidoToProd_CreaOPYTransiciona(t *testing.T) {
	db := newStubDB()
	db.rows["sp_op_create_from_pedido"] = gateway.Row{"id_orden_out": int64(31)}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/pedidos/8/to-prod", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, 31, body["id_orden"])

	require.Len(t, db.calls, 2)
	assert.Equal(t, "sp_op_create_from_pedido", db.calls[0].proc)
	assert.Equal(t, "sp_cambiar_estado", db.calls[1].proc)
	assert.Equal(t, "PEDIDO", db.calls[1].args[0])
	assert.Equal(t, "PROD", db.calls[1].args[2])
}

func TestEntregaToRuta_OkConMensaje(t *testing.T) {
	db := newStubDB()
	db.rows["sp_ent_set_estado"] = gateway.Row{"ok_out": true, "msg_out": "Guía generada: G-0009"}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/entregas/9/to-ruta", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Guía generada: G-0009", body["msg"])
}

func TestEntregaTracking_OkFalse_400(t *testing.T) {
	db := newStubDB()
	db.rows["sp_ent_update_tracking"] = gateway.Row{"ok_out": false, "msg_out": "Entrega ya finalizada"}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPatch, "/api/entregas/9/tracking", tokenAdmin,
		fiber.Map{"guia": "G-1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Entrega ya finalizada", decodeBody(t, resp)["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado y afectados
// ──────────────────────────────────────────────────────────────────────────────

func TestClientesDelete_SinAfectados_404(t *testing.T) {
	db := newStubDB()
	db.rows["sp_clientes_delete"] = gateway.Row{"affected": int64(0)}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodDelete, "/api/clientes/4", tokenAdmin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientesDelete_SoloAdmin(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodDelete, "/api/clientes/4", tokenVendedor, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salud e identidad
// ──────────────────────────────────────────────────────────────────────────────

func TestPing_Publico(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])
}

func TestDBPing_ReportaBase(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/db-ping", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "aracah_test", decodeBody(t, resp)["db"])
}

func TestMe_DevuelveIdentidad(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/me", tokenVendedor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user, ok := body["firebase_user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "vendedor@test", user["Email"])
}

func TestSyncUser_UpsertYPerfil(t *testing.T) {
	db := newStubDB()
	db.rows["sp_upsert_usuario_firebase"] = gateway.Row{
		"id_usuario_out": int64(44),
		"id_cliente_out": int64(9),
	}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/sync-user", tokenCliente, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 9, body["id_cliente_out"])
	require.NotNil(t, body["perfil"])

	call := db.calls[len(db.calls)-1]
	assert.Equal(t, "sp_upsert_usuario_firebase", call.proc)
	assert.Equal(t, "cliente@test", call.args[0])
	assert.Equal(t, "cliente", call.args[2], "rol por defecto del alta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReportesResumen_NombraLosSets(t *testing.T) {
	db := newStubDB()
	db.rowsets["sp_rep_resumen_dashboard"] = gateway.Result{Sets: []gateway.Rowset{
		{{"estado": "PEN", "cantidad": int64(3)}},
		{{"total_ventas": 1500.5}},
		{{"estado": "RUTA", "cantidad": int64(1)}},
		{{"material": "Tela", "consumo": 12.0}},
	}}
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/reportes/resumen", tokenAdmin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["pedidos_por_estado"], 1)
	assert.EqualValues(t, 1500.5, body["total_ventas"])
	assert.Len(t, body["entregas_por_estado"], 1)
	assert.Len(t, body["top_materiales"], 1)
}

func TestReportes_VendedorBloqueado(t *testing.T) {
	db := newStubDB()
	app, _ := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/reportes/resumen", tokenVendedor, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
