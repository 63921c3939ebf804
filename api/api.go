// Package api provides implementation of pacfind REST API
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pacfind/pacfind/alpm"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/pacfind/pacfind/query"
	"github.com/pacfind/pacfind/utils"
)

// Backend supplies API with configuration and loaded packages
//
// *context.PacfindContext implements it.
type Backend interface {
	Config() *utils.ConfigStructure
	Registry() (*alpm.Registry, error)
	Selection() alpm.Selection
}

// AbortWithJSONError aborts request, gin.ErrorLogger renders err as {"error": ...}
func AbortWithJSONError(c *gin.Context, code int, err error) *gin.Error {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	return c.AbortWithError(code, err)
}

// GET /api/version
func apiVersion(c *gin.Context) {
	c.JSON(200, gin.H{"Version": pacfind.Version})
}

type fieldInfo struct {
	Name     string
	Kind     string
	Relation bool
	Selector bool
}

// GET /api/fields
func apiFields(c *gin.Context) {
	result := []fieldInfo{}
	for _, field := range query.Fields() {
		result = append(result, fieldInfo{
			Name:     field.String(),
			Kind:     field.Kind().String(),
			Relation: field.IsRelation(),
			Selector: field.IsTraversable(),
		})
	}

	c.JSON(200, result)
}

// GET /api/repos
func apiReposList(c *gin.Context) {
	registry, err := context.Registry()
	if err != nil {
		AbortWithJSONError(c, 500, err)
		return
	}

	c.JSON(200, registry.Repos())
}
