package api

import "github.com/MdImranAlam678/Keyword-Extraction-NLP/keywords"

const healthMessage = "TF-IDF Keyword Extraction API is running"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type extractResponse struct {
	Keywords       []keywords.Keyword `json:"keywords"`
	Count          int                `json:"count"`
	ExtractionTime float64            `json:"extraction_time"` // seconds, 4 decimal places
	Status         string             `json:"status"`
}
