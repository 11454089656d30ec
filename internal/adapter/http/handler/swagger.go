package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

var (
	docMu   sync.RWMutex
	docYAML []byte
	docJSON []byte
)

// SetSwaggerSpec installs the OpenAPI document. The JSON rendering is
// derived once here; a document that is not valid YAML is rejected. An
// empty spec unloads the document.
func SetSwaggerSpec(spec []byte) error {
	if len(spec) == 0 {
		docMu.Lock()
		docYAML, docJSON = nil, nil
		docMu.Unlock()
		return nil
	}

	var doc interface{}
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		return fmt.Errorf("parse openapi yaml: %w", err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("render openapi json: %w", err)
	}

	docMu.Lock()
	defer docMu.Unlock()
	docYAML = spec
	docJSON = asJSON
	return nil
}

// SwaggerSpec serves the raw OpenAPI YAML.
func SwaggerSpec(c *gin.Context) {
	docMu.RLock()
	spec := docYAML
	docMu.RUnlock()

	if spec == nil {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", spec)
}

// SwaggerSpecJSON serves the same document as JSON.
func SwaggerSpecJSON(c *gin.Context) {
	docMu.RLock()
	spec := docJSON
	docMu.RUnlock()

	if spec == nil {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "application/json", spec)
}

// SwaggerUI serves a Swagger UI page that loads /swagger/spec.json.
func SwaggerUI(c *gin.Context) {
	html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Loyalty Rewards - API Docs</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/spec.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
