package interfaces

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruiting-intake/config"
)

// DebugConfig reports which configuration values are present. Only presence
// booleans, never the values themselves; the route is registered only when
// the debug flag is set.
func DebugConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"airtable_token_set":   cfg.AirtableToken != "",
			"airtable_base_id_set": cfg.AirtableBaseID != "",
			"webhook_url_set":      cfg.WebhookURL != "",
			"outbound_timeout":     cfg.OutboundTimeout.String(),
		})
	}
}
