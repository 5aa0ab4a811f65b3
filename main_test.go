package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vasp-registry/config"
	"vasp-registry/services"
	"vasp-registry/testutil"
)

const liPotcar = `   VRHFIN =Li: 1s2s2p
   LEXCH  = PE
   TITEL  = PAW_PBE Li_sv 23Jan2001
   ENMAX  =  499.034;  ENMIN  =  374.275 eV
 End of Dataset
`

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	logger := zap.NewNop()
	elements := services.NewElementDirectory(db, logger)
	potentials := services.NewPotentialService(db, elements, logger)
	hubbards := services.NewHubbardRegistry(db, elements, logger)
	importService := services.NewImportService(cfg, potentials, nil, logger, nil)
	return setupRouter(cfg, elements, potentials, hubbards, importService, logger)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPotentialRoutes(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := doJSON(t, router, http.MethodPost, "/potentials/import", gin.H{"potcar": liPotcar, "release": "r5_4_0"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var imported struct {
		Created int      `json:"created"`
		Labels  []string `json:"labels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &imported))
	require.Equal(t, 1, imported.Created)
	require.Equal(t, []string{"Li_sv PAW PBE r5_4_0"}, imported.Labels)

	w = doJSON(t, router, http.MethodGet, "/potentials?element=Li", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Li_sv", list[0]["name"])

	w = doJSON(t, router, http.MethodGet, "/potentials/1/potcar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "TITEL  = PAW_PBE Li_sv 23Jan2001")

	w = doJSON(t, router, http.MethodGet, "/potentials/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/potentials/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPotentialImport_Errors(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := doJSON(t, router, http.MethodPost, "/potentials/import", gin.H{
		"potcar": "   TITEL  = PAW_PBE Zr_sv 04Jan2005\n   ENMAX  =  230.0;  ENMIN  =  172.5 eV\n",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), `"symbol":"Zr"`)

	w = doJSON(t, router, http.MethodPost, "/potentials/import", gin.H{
		"potcar": "   TITEL  = PAW_PBE Li_sv 23Jan2001\n   ENMAX  =  x;  ENMIN  =  1.0 eV\n",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/potentials/import", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPotentialImport_DatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	db := testutil.NewDB(t)
	logger := zap.NewNop()
	elements := services.NewElementDirectory(db, logger)
	potentials := services.NewPotentialService(db, elements, logger)
	router := setupRouter(cfg, elements, potentials, services.NewHubbardRegistry(db, elements, logger),
		services.NewImportService(cfg, potentials, nil, logger, nil), logger)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// ein Datenbankfehler ist kein fehlerhafter Upload
	w := doJSON(t, router, http.MethodPost, "/potentials/import", gin.H{"potcar": liPotcar})
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
}

func TestHubbardRoutes(t *testing.T) {
	router := newTestRouter(t, &config.Config{})
	body := gin.H{"element": "Fe", "ligand": "O", "convention": "wang", "oxidation_state": 3, "u": 5.3, "l": 2}

	var first, second struct {
		Label  string `json:"label"`
		Key    string `json:"key"`
		Active bool   `json:"active"`
		Hub    struct {
			ID uint `json:"id"`
		} `json:"hubbard"`
	}
	w := doJSON(t, router, http.MethodPost, "/hubbards", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = doJSON(t, router, http.MethodPost, "/hubbards", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	require.Equal(t, first.Hub.ID, second.Hub.ID)
	require.Equal(t, "Fe3+-O (U=5.30, L=2)", second.Label)
	require.Equal(t, "Fe_5.30", second.Key)
	require.True(t, second.Active)

	w = doJSON(t, router, http.MethodPost, "/hubbards", gin.H{"element": "Cu"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"label":"Cu (U=0.00, L=-1)"`)
	require.Contains(t, w.Body.String(), `"active":false`)

	w = doJSON(t, router, http.MethodPost, "/hubbards", gin.H{"element": "Xx"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodGet, "/hubbards/table", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"Fe_5.30"`)
	require.Contains(t, w.Body.String(), `"Cu_0.00"`)
}

func TestAPIKeyMiddleware(t *testing.T) {
	router := newTestRouter(t, &config.Config{APISecretKey: "secret"})

	w := doJSON(t, router, http.MethodGet, "/elements", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/elements", nil)
	req.Header.Set("X-API-KEY", "secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"symbol":"Li"`)
}
