package validator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required"`
}

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestBindFormValid(t *testing.T) {
	Setup()

	var form sampleForm
	fields := BindForm(formContext(t, url.Values{
		"name":  {"Jane"},
		"email": {"jane@example.com"},
	}), &form)

	assert.Nil(t, fields)
	assert.Equal(t, "Jane", form.Name)
}

func TestBindFormReportsMissingFieldsByFormTag(t *testing.T) {
	Setup()

	var form sampleForm
	fields := BindForm(formContext(t, url.Values{"name": {"Jane"}}), &form)

	require.NotNil(t, fields)
	assert.Contains(t, fields, "email")
	assert.NotContains(t, fields, "Email")
}

func TestBindFormTreatsBlankAsMissing(t *testing.T) {
	Setup()

	var form sampleForm
	fields := BindForm(formContext(t, url.Values{
		"name":  {"Jane"},
		"email": {""},
	}), &form)

	require.NotNil(t, fields)
	assert.Contains(t, fields, "email")
}
