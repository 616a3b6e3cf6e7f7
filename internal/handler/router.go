package handler

import (
	"net/http"

	_ "buildings-api/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every handler onto a gin engine.
func NewRouter(markers *MarkerHandler, buildingList *BuildingHandler, units *UnitHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/map", markers.MapSettings)
	r.GET("/markers", markers.Markers)
	r.GET("/markers/building", buildingList.BuildingByTitle)
	r.GET("/buildings", buildingList.List)
	r.GET("/buildings/:id", buildingList.Building)
	r.GET("/units", units.Units)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
