package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/keywords"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "healthy", Message: healthMessage})
}

func (s *Server) handleExtract(c *gin.Context) {
	start := time.Now()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, errTooLarge)
			return
		}
		abortWithError(c, err)
		return
	}

	text, topN, err := parseExtractRequest(body, s.topN)
	if err != nil {
		abortWithError(c, err)
		return
	}

	kws := s.extract(text, topN)
	if kws == nil {
		kws = []keywords.Keyword{}
	}
	s.metrics.ObserveKeywords(len(kws))

	c.JSON(http.StatusOK, extractResponse{
		Keywords:       kws,
		Count:          len(kws),
		ExtractionTime: roundSeconds(time.Since(start)),
		Status:         statusSuccess,
	})
}

func (s *Server) extract(text string, topN int) []keywords.Keyword {
	if s.cache == nil {
		return s.extractor.Extract(text, topN)
	}

	key := cacheKey{text: text, topN: topN}
	if kws, ok := s.cache.Get(key); ok {
		s.metrics.ObserveCache(true)
		return kws
	}
	s.metrics.ObserveCache(false)

	kws := s.extractor.Extract(text, topN)
	s.cache.Add(key, kws)
	return kws
}

// parseExtractRequest validates an extraction body and resolves top_n.
// A body that is empty, not JSON, not an object, or an empty object counts
// as no data. top_n falls back to defaultTopN unless it is a positive
// integer.
func parseExtractRequest(body []byte, defaultTopN int) (string, int, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", 0, errNoData
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return "", 0, errNoData
	}

	var text string
	if raw, ok := fields["text"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", 0, errTextType
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", 0, errEmptyText
	}

	return text, parseTopN(fields["top_n"], defaultTopN), nil
}

func parseTopN(raw json.RawMessage, fallback int) int {
	if len(raw) == 0 {
		return fallback
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fallback
	}
	num, ok := v.(json.Number)
	if !ok {
		return fallback
	}
	n, err := num.Int64()
	if err != nil || n <= 0 {
		return fallback
	}
	return int(min(n, math.MaxInt32))
}

// roundSeconds reports d in seconds with 4 decimal places.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1e4) / 1e4
}
