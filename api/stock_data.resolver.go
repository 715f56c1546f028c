package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// stockData proxies the upstream quote provider, passing its JSON
// through untouched. Unknown or incomplete actions are a 400; provider
// or network failures are a 500. Both carry an error body.
func (m ApiHandler) stockData(c *gin.Context) {
	action := c.Query("action")
	symbol := c.Query("symbol")
	query := c.Query("query")

	var (
		body []byte
		err  error
	)
	switch {
	case action == "search":
		body, err = m.FinnhubRepository.RawSearch(c.Request.Context(), query)
	case action == "quote" && symbol != "":
		body, err = m.FinnhubRepository.RawQuote(c.Request.Context(), symbol)
	case action == "profile" && symbol != "":
		body, err = m.FinnhubRepository.RawProfile(c.Request.Context(), symbol)
	default:
		returnErrorJsonCode(fmt.Errorf("invalid action or missing parameters"), c, 400)
		return
	}

	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Data(200, "application/json", body)
}
