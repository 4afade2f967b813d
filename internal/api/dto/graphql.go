package dto

import "github.com/goccy/go-json"

// GraphQLRequest 单个 GraphQL 请求体
type GraphQLRequest struct {
	Query         string                 `json:"query" form:"query"`
	OperationName string                 `json:"operationName" form:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLErrorLocation 错误在查询文本中的位置
type GraphQLErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLError 错误信封
type GraphQLError struct {
	Message    string                 `json:"message"`
	Locations  []GraphQLErrorLocation `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions"`
}

// GraphQLResponse 执行结果
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []*GraphQLError `json:"errors,omitempty"`
}
