//go:build integration

package integrationtest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GulizarHanum/Birthday/internal/config"
	"github.com/GulizarHanum/Birthday/internal/handler"
	"github.com/GulizarHanum/Birthday/internal/repository"
	"github.com/GulizarHanum/Birthday/internal/service"
)

// setupRouter connects to the MySQL database configured through the environment, applies the
// migrations and returns a router serving the birthday service on top of it.
//
// Usage example on the command line:
// > DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go test -tags integration ./internal/integrationtest
func setupRouter(t *testing.T) *gin.Engine {
	cfg, err := config.Load("")
	require.NoError(t, err)

	ctx := context.Background()
	sqlDB, err := repository.OpenMySQL(ctx, cfg.Database)
	require.NoError(t, err)
	_, err = repository.Migrate(sqlDB, true)
	require.NoError(t, err)

	store, err := repository.NewMySQLStore(ctx, sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	gin.SetMode(gin.ReleaseMode)
	return handler.SetupHttpRouter(service.New(store), false)
}

func serve(router *gin.Engine, method string, url string, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(method, url, strings.NewReader(body))
	router.ServeHTTP(recorder, request)
	return recorder
}

// newestID returns the highest id of a list response.
func newestID(t *testing.T, recorder *httptest.ResponseRecorder) int64 {
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	var newest int64
	for _, b := range list {
		if id := int64(b["id"].(float64)); id > newest {
			newest = id
		}
	}
	return newest
}

// TestBirthdayHappyPath tests a POST, GET, PUT, and DELETE with valid data.
func TestBirthdayHappyPath(t *testing.T) {
	router := setupRouter(t)

	// test the endpoint for creating a birthday
	postRecorder := serve(router, "POST", "/v1/birthdays", `
		{
			"name": "Erika Mustermann",
			"date": "1969-03-02",
			"role": "FAMILY",
			"photo": "data:image/png;base64,aGVsbG8="
		}
	`)
	require.Equal(t, http.StatusOK, postRecorder.Code)
	id := newestID(t, postRecorder)
	idAsString := fmt.Sprint(id)

	// test the endpoint for finding a birthday
	getRecorder := serve(router, "GET", "/v1/birthdays/"+idAsString, "")
	assert.Equal(t, http.StatusOK, getRecorder.Code)
	var getBody map[string]interface{}
	json.Unmarshal(getRecorder.Body.Bytes(), &getBody)
	assert.Equal(t, float64(id), getBody["id"])
	assert.Equal(t, "Erika Mustermann", getBody["name"])
	assert.Equal(t, "1969-03-02", getBody["date"])
	assert.Equal(t, "FAMILY", getBody["role"])
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", getBody["photo"])

	// test the endpoint for updating a birthday
	putRecorder := serve(router, "PUT", "/v1/birthdays", `
		{
			"id": `+idAsString+`,
			"name": "Rudi Völler",
			"date": "1960-04-13",
			"role": "COWORKER"
		}
	`)
	assert.Equal(t, http.StatusOK, putRecorder.Code)
	var putBody map[string]interface{}
	json.Unmarshal(putRecorder.Body.Bytes(), &putBody)
	assert.Equal(t, float64(id), putBody["id"])
	assert.Equal(t, "Rudi Völler", putBody["name"])
	assert.Equal(t, "1960-04-13", putBody["date"])
	assert.Equal(t, "COWORKER", putBody["role"])
	assert.NotContains(t, putBody, "photo")

	// test if a subsequent lookup of the birthday returns the updated values
	getAgainRecorder := serve(router, "GET", "/v1/birthdays/"+idAsString, "")
	assert.Equal(t, http.StatusOK, getAgainRecorder.Code)
	var getAgainBody map[string]interface{}
	json.Unmarshal(getAgainRecorder.Body.Bytes(), &getAgainBody)
	assert.Equal(t, "Rudi Völler", getAgainBody["name"])
	assert.Equal(t, "1960-04-13", getAgainBody["date"])
	assert.NotContains(t, getAgainBody, "photo")

	// test the endpoint for deleting a birthday
	deleteRecorder := serve(router, "DELETE", "/v1/birthdays?id="+idAsString, "")
	assert.Equal(t, http.StatusNoContent, deleteRecorder.Code)

	// test if a final lookup of the birthday returns an empty object
	getFinalRecorder := serve(router, "GET", "/v1/birthdays/"+idAsString, "")
	assert.Equal(t, http.StatusOK, getFinalRecorder.Code)
	assert.JSONEq(t, "{}", getFinalRecorder.Body.String())

	deleteAgainRecorder := serve(router, "DELETE", "/v1/birthdays?id="+idAsString, "")
	assert.Equal(t, http.StatusNotFound, deleteAgainRecorder.Code)
}

// TestCreateBirthdayInvalidBody tests a POST with different forms of invalid request body data.
func TestCreateBirthdayInvalidBody(t *testing.T) {
	invalidRequestBodies := []string{
		"",
		"not JSON",
		`{
			"name": "Erika Mustermann"
			"date": "1969-03-02"
			"role": "FAMILY"
		}`, // commas missing
		`{"name": "Erika Mustermann", "date": "1969-03-02"}`,
		`{"name": "Erika Mustermann", "date": "1969-03-02", "role": "NEIGHBOUR"}`,
		`{"name": "Erika Mustermann", "date": "3000-01-01", "role": "FAMILY"}`,
	}

	router := setupRouter(t)
	for _, body := range invalidRequestBodies {
		recorder := serve(router, "POST", "/v1/birthdays", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, body)
	}
}

// TestUpcomingBirthday expects a birthday celebrated today to be listed as upcoming.
func TestUpcomingBirthday(t *testing.T) {
	router := setupRouter(t)

	// forty years back keeps Feb 29 a valid date
	birthDate := time.Now().AddDate(-40, 0, 0).Format(service.DateLayout)
	postRecorder := serve(router, "POST", "/v1/birthdays",
		`{"name": "Upcoming", "date": "`+birthDate+`", "role": "FRIEND"}`)
	require.Equal(t, http.StatusOK, postRecorder.Code)
	id := newestID(t, postRecorder)
	defer serve(router, "DELETE", fmt.Sprintf("/v1/birthdays?id=%d", id), "")

	recorder := serve(router, "GET", "/v1/birthdays/upcoming", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	found := false
	for _, b := range list {
		if int64(b["id"].(float64)) == id {
			found = true
		}
	}
	assert.True(t, found)
}
