package ioweb

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gn"
	gntaxa "github.com/gnames/gntaxa/pkg"
	"github.com/gnames/gntaxa/pkg/taxonomy"
)

// ErrorResponse is returned with every non-successful status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PingResponse confirms that the service is alive.
type PingResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Ready   bool   `json:"ready"`
}

// TaxonResponse describes a taxon.
type TaxonResponse struct {
	QueryID             int      `json:"queryId"`
	ID                  int      `json:"id"`
	ScientificName      string   `json:"scientificName"`
	PreferredCommonName string   `json:"preferredCommonName,omitempty"`
	CommonNames         []string `json:"commonNames,omitempty"`
	Rank                string   `json:"rank"`
	ParentID            int      `json:"parentId,omitempty"`
	Domains             []string `json:"domains,omitempty"`
}

// LineageResponse lists ancestors of a taxon from the top-most one.
type LineageResponse struct {
	ID      int                    `json:"id"`
	Lineage []taxonomy.LineageName `json:"lineage"`
}

// ChildrenResponse lists direct children of a taxon.
type ChildrenResponse struct {
	ID       int   `json:"id"`
	Children []int `json:"children"`
}

// LCAResponse is the lowest common ancestor of two taxa.
type LCAResponse struct {
	A              int    `json:"a"`
	B              int    `json:"b"`
	LCA            int    `json:"lca"`
	ScientificName string `json:"scientificName"`
	Rank           string `json:"rank"`
}

// CompareResponse is a comparison of a query taxon with a reference.
type CompareResponse struct {
	Query int `json:"query"`
	Ref   int `json:"ref"`
	taxonomy.Comparison
}

// FindResponse is the taxon found by name.
type FindResponse struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// ReloadResponse reports sizes of the reloaded taxonomy.
type ReloadResponse struct {
	taxonomy.Stats
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Status:  "pong",
		Version: gntaxa.Version,
		Ready:   s.current.Load() != nil,
	})
}

func (s *Server) reload(c *gin.Context) {
	stats, err := s.Load(c.Request.Context())
	if err != nil {
		msg := err.Error()
		if gnErr, ok := err.(*gn.Error); ok {
			msg = gnErr.Msg
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, ReloadResponse{Stats: stats})
}

// requireTaxonomy stops requests until a taxonomy is loaded. The state
// is read once and kept in the context, so one request never mixes data
// from two taxonomy versions.
func (s *Server) requireTaxonomy(c *gin.Context) {
	st := s.current.Load()
	if st == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable,
			ErrorResponse{Error: "taxonomy is not loaded yet"})
		return
	}
	c.Set("state", st)
	c.Next()
}

func getState(c *gin.Context) *state {
	return c.MustGet("state").(*state)
}

// knownTaxon parses an identifier and checks that the taxon exists.
// It writes an error response and returns false otherwise.
func knownTaxon(c *gin.Context, g *taxonomy.Graph, s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil {
		c.JSON(http.StatusBadRequest,
			ErrorResponse{Error: "malformed taxon id: '" + s + "'"})
		return 0, false
	}
	if !g.Has(id) {
		c.JSON(http.StatusNotFound,
			ErrorResponse{Error: "taxon " + s + " is not found"})
		return 0, false
	}
	return id, true
}

func (s *Server) taxon(c *gin.Context) {
	g := getState(c).graph
	id, ok := knownTaxon(c, g, c.Param("id"))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, NewTaxonResponse(g, id))
}

// NewTaxonResponse collects known data about a taxon. Merged
// identifiers are reported under the identifier they were merged into.
func NewTaxonResponse(g *taxonomy.Graph, id int) TaxonResponse {
	res := TaxonResponse{QueryID: id, ID: g.Resolve(id)}
	res.ScientificName, _ = g.ScientificName(id)
	res.PreferredCommonName, _ = g.PreferredCommonName(id)
	res.CommonNames, _ = g.CommonNames(id)
	res.Rank, _ = g.Rank(id)
	res.ParentID, _ = g.ParentID(id)
	res.Domains = g.Domains(id)
	return res
}

func (s *Server) lineage(c *gin.Context) {
	g := getState(c).graph
	id, ok := knownTaxon(c, g, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, LineageResponse{
		ID:      g.Resolve(id),
		Lineage: g.LineageWithNames(id),
	})
}

func (s *Server) children(c *gin.Context) {
	g := getState(c).graph
	id, ok := knownTaxon(c, g, c.Param("id"))
	if !ok {
		return
	}
	children := g.Children(id)
	if children == nil {
		children = []int{}
	}
	c.JSON(http.StatusOK, ChildrenResponse{ID: g.Resolve(id), Children: children})
}

func (s *Server) lca(c *gin.Context) {
	g := getState(c).graph
	a, ok := knownTaxon(c, g, c.Query("a"))
	if !ok {
		return
	}
	b, ok := knownTaxon(c, g, c.Query("b"))
	if !ok {
		return
	}

	lca, ok := g.LowestCommonAncestor(a, b)
	if !ok {
		c.JSON(http.StatusNotFound,
			ErrorResponse{Error: "taxa have no common ancestor"})
		return
	}
	res := LCAResponse{A: a, B: b, LCA: lca}
	res.ScientificName, _ = g.ScientificName(lca)
	res.Rank, _ = g.Rank(lca)
	c.JSON(http.StatusOK, res)
}

func (s *Server) compare(c *gin.Context) {
	g := getState(c).graph
	query, ok := knownTaxon(c, g, c.Query("query"))
	if !ok {
		return
	}
	ref, ok := knownTaxon(c, g, c.Query("ref"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, CompareResponse{
		Query:      query,
		Ref:        ref,
		Comparison: g.CompareTaxons(query, ref),
	})
}

func (s *Server) find(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest,
			ErrorResponse{Error: "name parameter is required"})
		return
	}
	id, ok := getState(c).names.TaxID(name)
	if !ok {
		c.JSON(http.StatusNotFound,
			ErrorResponse{Error: "name '" + name + "' is not found"})
		return
	}
	c.JSON(http.StatusOK, FindResponse{Name: name, ID: id})
}
