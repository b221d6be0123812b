package i

import "github.com/gin-gonic/gin"

// Controller registers its routes under a versioned group.
type Controller interface {
	Register(*gin.RouterGroup)
}
