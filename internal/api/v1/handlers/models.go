package handlers

import "ulascansenturk/travel-info-service/internal/service"

type ResultResponse struct {
	Result string `json:"result"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

type pageData struct {
	Query  service.Query
	Result string
	Error  string
}
