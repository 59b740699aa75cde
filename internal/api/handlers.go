package api

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/gradslides/internal/image"
	"github.com/youruser/gradslides/internal/issue"
	"github.com/youruser/gradslides/internal/roster"
)

// SlideRenderer renders the slide for one student.
type SlideRenderer interface {
	RenderSlide(s roster.Student) (*image.NRGBA, error)
}

// Handler serves previews of a prepared roster.
type Handler struct {
	students []roster.Student
	byID     map[string]*roster.Student
	renderer SlideRenderer
}

func NewHandler(students []roster.Student, renderer SlideRenderer) *Handler {
	return &Handler{
		students: students,
		byID:     roster.ByID(students, issue.Discard()),
		renderer: renderer,
	}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listStudents(c *gin.Context) {
	awardsOnly, _ := strconv.ParseBool(c.Query("awards_only"))
	out := roster.Filter(h.students, roster.FilterOptions{
		AwardsOnly: awardsOnly,
		FreeWords:  c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"count": len(out), "students": out})
}

// slideHandler returns the PNG slide for the student in the :id path parameter.
func (h *Handler) slideHandler(c *gin.Context) {
	s, ok := h.byID[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	img, err := h.renderer.RenderSlide(*s)
	if err != nil {
		log.Println("render error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
