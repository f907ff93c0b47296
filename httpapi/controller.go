package httpapi

import "github.com/gin-gonic/gin"

// Controller is the route-registration seam every HTTP-facing feature
// implements. RegisterProtected exists for parity with an
// authenticated deployment; the board engine itself treats the player
// header as an unverified identity, so today every controller's
// protected group is empty.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
