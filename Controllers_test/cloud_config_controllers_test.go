package Controllers_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limpacelular/limpa-celular/models"
)

func TestCloudConfigRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	w := doJSON(t, r, http.MethodGet, "/admin/cloud-config", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _ := registerUser(t, r, "comum@x.com", "password1")
	w = doJSON(t, r, http.MethodGet, "/admin/cloud-config", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Sem permissão", decodeBody(t, w)["message"])
}

func TestCloudConfigGetBeforeAnyWrite(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	adminToken, _ := seedAdmin(t, db, "admin@x.com")

	w := doJSON(t, r, http.MethodGet, "/admin/cloud-config", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["config"])
}

func TestCloudConfigUpsertConvergesToSingleRow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	adminToken, _ := seedAdmin(t, db, "admin@x.com")

	w := doJSON(t, r, http.MethodPut, "/admin/cloud-config", adminToken, map[string]interface{}{
		"provider":          models.ProviderAWSS3,
		"enabled":           true,
		"bucketOrContainer": "limpa-celular-backups",
		"region":            "sa-east-1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cfg := decodeBody(t, w)["config"].(map[string]interface{})
	assert.Equal(t, models.ProviderAWSS3, cfg["provider"])
	assert.Equal(t, true, cfg["enabled"])

	// Segunda escrita substitui a primeira em vez de criar outra linha.
	w = doJSON(t, r, http.MethodPut, "/admin/cloud-config", adminToken, map[string]interface{}{
		"provider": models.ProviderAzureBlob,
		"enabled":  false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	cfg = decodeBody(t, w)["config"].(map[string]interface{})
	assert.Equal(t, models.ProviderAzureBlob, cfg["provider"])
	assert.Equal(t, false, cfg["enabled"])

	var count int64
	db.Model(&models.CloudConfig{}).Count(&count)
	assert.Equal(t, int64(1), count)

	w = doJSON(t, r, http.MethodGet, "/admin/cloud-config", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cfg = decodeBody(t, w)["config"].(map[string]interface{})
	assert.Equal(t, models.ProviderAzureBlob, cfg["provider"])
}

// Regressão da corrida "acha a mais recente e decide criar": escritas
// concorrentes precisam convergir para uma única linha.
func TestCloudConfigConcurrentWritesSingleRow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	adminToken, _ := seedAdmin(t, db, "admin@x.com")

	providers := []string{
		models.ProviderAWSS3,
		models.ProviderAzureBlob,
		models.ProviderGoogleDrive,
		models.ProviderOther,
	}

	var wg sync.WaitGroup
	for _, provider := range providers {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			doJSON(t, r, http.MethodPut, "/admin/cloud-config", adminToken, map[string]interface{}{
				"provider": p,
				"enabled":  true,
			})
		}(provider)
	}
	wg.Wait()

	var count int64
	db.Model(&models.CloudConfig{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var cfg models.CloudConfig
	require.NoError(t, db.First(&cfg, models.CloudConfigSingletonID).Error)
	assert.Contains(t, providers, cfg.Provider)
}

func TestCloudConfigValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	adminToken, _ := seedAdmin(t, db, "admin@x.com")

	// Provider fora do enum.
	w := doJSON(t, r, http.MethodPut, "/admin/cloud-config", adminToken, map[string]interface{}{
		"provider": "DROPBOX",
		"enabled":  true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// enabled ausente.
	w = doJSON(t, r, http.MethodPut, "/admin/cloud-config", adminToken, map[string]interface{}{
		"provider": models.ProviderNone,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Dados inválidos", decodeBody(t, w)["message"])
}
