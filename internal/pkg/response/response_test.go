package response

import (
	"Folio/internal/api/dto"
	"Folio/internal/service"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (dto.Response, []byte) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, err)
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res, w.Body.Bytes()
}

func TestError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"NotFound", service.ErrPostNotFound, NotFound},
		{"Wrapped", fmt.Errorf("load: %w", service.ErrCategoryNotFound), NotFound},
		{"BadColumn", service.ErrColumnNotAllowed, BadRequest},
		{"EmptyBody", io.EOF, BadRequest},
		{"Unknown", errors.New("boom"), InternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, _ := render(t, c.err)
			assert.Equal(t, c.code, res.Code)
		})
	}
}

func TestErrorValidation(t *testing.T) {
	ve := service.NewValidationError("slug", "duplicate", "字段 [slug] 已被使用")
	ve.Add("title", "required", "字段 [title] 不能为空")

	res, raw := render(t, ve)
	assert.Equal(t, UnprocessableEntity, res.Code)

	var body struct {
		Data []dto.FieldError `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "slug", body.Data[0].Field)
	assert.Equal(t, "duplicate", body.Data[0].Kind)
}

func TestErrorHidesInternalMessage(t *testing.T) {
	res, _ := render(t, errors.New("dial tcp: connection refused"))
	assert.Equal(t, service.UnExpectedError.Error(), res.Message)
}
