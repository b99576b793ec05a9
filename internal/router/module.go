package router

import "github.com/gin-gonic/gin"

// Module is one routable feature area of the API. A module attaches its own
// routes and route-level middleware to the group the registry hands it.
type Module interface {
	Register(rg *gin.RouterGroup)
}
