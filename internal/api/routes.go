package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/students", h.listStudents)
		api.GET("/slides/:id", h.slideHandler)
		api.GET("/qr", qrHandler)
	}
}
