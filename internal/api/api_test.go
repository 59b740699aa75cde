package api

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/gradslides/internal/roster"
)

type fakeRenderer struct {
	err error
}

func (f fakeRenderer) RenderSlide(s roster.Student) (*image.NRGBA, error) {
	if f.err != nil {
		return nil, f.err
	}
	return imaging.New(16, 9, color.NRGBA{A: 0xff}), nil
}

func newRouter(r SlideRenderer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	students := []roster.Student{
		{StudentID: "1001", FullName: "Ada Lovelace", FirstName: "Ada", LastName: "Lovelace", Awards: []string{"Honour Roll"}},
		{StudentID: "1002", FullName: "Alan Turing", FirstName: "Alan", LastName: "Turing", Awards: []string{}},
	}
	e := gin.New()
	RegisterRoutes(e, NewHandler(students, r))
	return e
}

func get(e *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := get(newRouter(fakeRenderer{}), "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListStudents(t *testing.T) {
	e := newRouter(fakeRenderer{})

	var body struct {
		Count    int              `json:"count"`
		Students []roster.Student `json:"students"`
	}
	w := get(e, "/api/students")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)

	w = get(e, "/api/students?awards_only=true")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "1001", body.Students[0].StudentID)

	w = get(e, "/api/students?q=turing")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "1002", body.Students[0].StudentID)
}

func TestSlide(t *testing.T) {
	e := newRouter(fakeRenderer{})

	w := get(e, "/api/slides/1001")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 9), img.Bounds())

	w = get(e, "/api/slides/9999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(newRouter(fakeRenderer{err: errors.New("boom")}), "/api/slides/1001")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "boom"))
}

func TestQR(t *testing.T) {
	e := newRouter(fakeRenderer{})

	w := get(e, "/api/qr?text=grads&size=200")
	require.Equal(t, http.StatusOK, w.Code)
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	w = get(e, "/api/qr")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
