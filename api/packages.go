package api

import (
	"fmt"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gin-gonic/gin"
	"github.com/pacfind/pacfind/alpm"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/pacfind/pacfind/query"
)

// packageJSON is package representation in API responses
//
// Fields which make sense only for some repositories are omitted otherwise.
type packageJSON struct {
	Key           string
	Repository    string
	Name          string
	Version       string
	Description   string
	URL           string
	Architecture  string
	Packager      string
	Licenses      []string
	Groups        []string
	Depends       []string
	OptDepends    []string
	Provides      []string
	Conflicts     []string
	Replaces      []string
	RequiredBy    []string `json:",omitempty"`
	BuildDate     int64
	InstalledSize int64
	Size          *int64  `json:",omitempty"`
	InstallDate   *int64  `json:",omitempty"`
	Reason        *string `json:",omitempty"`
	Filename      *string `json:",omitempty"`
	MD5Sum        *string `json:",omitempty"`
	SHA256Sum     *string `json:",omitempty"`
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func newPackageJSON(p *alpm.Package) *packageJSON {
	result := &packageJSON{
		Key:           p.FullName(),
		Repository:    p.Repository,
		Name:          p.Name,
		Version:       p.Version,
		Description:   p.Description,
		URL:           p.URL,
		Architecture:  p.Architecture,
		Packager:      p.Packager,
		Licenses:      orEmpty(p.Licenses),
		Groups:        orEmpty(p.Groups),
		Depends:       orEmpty(p.Depends),
		OptDepends:    orEmpty(p.OptDepends),
		Provides:      orEmpty(p.Provides),
		Conflicts:     orEmpty(p.Conflicts),
		Replaces:      orEmpty(p.Replaces),
		RequiredBy:    p.RequiredBy,
		BuildDate:     p.BuildDate,
		InstalledSize: p.InstalledSize,
	}

	switch p.Repository {
	case alpm.LocalRepository:
		result.InstallDate = pointer.ToInt64(p.InstallDate)
		if p.IsExplicit() {
			result.Reason = pointer.ToString("explicit")
		} else {
			result.Reason = pointer.ToString("dependency")
		}
	default:
		result.Filename = pointer.ToString(p.Filename)
		result.Size = pointer.ToInt64(p.Size)
	}

	if p.MD5Sum != "" {
		result.MD5Sum = pointer.ToString(p.MD5Sum)
	}
	if p.SHA256Sum != "" {
		result.SHA256Sum = pointer.ToString(p.SHA256Sum)
	}

	return result
}

type packagesResponse struct {
	Packages interface{} `json:"packages"`
	Warnings []string    `json:"warnings"`
}

// GET /api/packages?q=<query>&format=details
func apiPackages(c *gin.Context) {
	tokens, err := query.Split(c.Query("q"))
	if err != nil {
		AbortWithJSONError(c, http.StatusBadRequest, fmt.Errorf("unable to split query: %s", err))
		return
	}

	node, err := query.Parse(tokens)
	if err != nil {
		AbortWithJSONError(c, http.StatusBadRequest, err)
		return
	}

	registry, err := context.Registry()
	if err != nil {
		AbortWithJSONError(c, http.StatusInternalServerError, err)
		return
	}

	selection := context.Selection()
	list := selection.Apply(registry.Packages(), registry)

	reporter := &pacfind.RecordingResultReporter{Warnings: []string{}}
	result := query.NewEvaluator(registry, reporter).Run(node, list)

	response := packagesResponse{Warnings: reporter.Warnings}

	if c.Query("format") == "details" {
		details := make([]*packageJSON, 0, result.Len())
		_ = result.ForEach(func(p *alpm.Package) error {
			details = append(details, newPackageJSON(p))
			return nil
		})
		response.Packages = details
	} else {
		keys := make([]string, 0, result.Len())
		_ = result.ForEach(func(p *alpm.Package) error {
			keys = append(keys, p.FullName())
			return nil
		})
		response.Packages = keys
	}

	c.JSON(200, response)
}

// GET /api/packages/:name
func apiPackagesShow(c *gin.Context) {
	registry, err := context.Registry()
	if err != nil {
		AbortWithJSONError(c, http.StatusInternalServerError, err)
		return
	}

	packages := registry.ByName(c.Params.ByName("name"))
	if len(packages) == 0 {
		AbortWithJSONError(c, http.StatusNotFound, fmt.Errorf("package %s: not found", c.Params.ByName("name")))
		return
	}

	c.JSON(200, newPackageJSON(packages[0]))
}
