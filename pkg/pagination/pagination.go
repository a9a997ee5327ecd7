package pagination

import (
	"microblog/pkg/apperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params 分页请求参数
type Params struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// Normalize 填充默认值（page=1, limit=20）
// 只处理未传参的零值，越界值交给 Validate 拒绝
func (p *Params) Normalize() {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// Validate 校验分页边界，越界直接拒绝而不是修正
func (p *Params) Validate() error {
	if p.Page < 1 {
		return apperr.New(apperr.KindInvalidInput, "page must be at least 1")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return apperr.Newf(apperr.KindInvalidInput, "limit must be between 1 and %d", MaxLimit)
	}
	return nil
}

// Offset 计算分页偏移量，调用前必须先通过 Validate
func (p *Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page 分页响应结果
type Page struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int64       `json:"totalPages"`
}

// NewPage 组装分页响应，totalPages = ceil(total/limit)
// total 为 0 时 totalPages 为 0；超出范围的页返回空数组而非错误
func NewPage(data interface{}, total int64, p Params) Page {
	var totalPages int64
	if p.Limit > 0 {
		totalPages = (total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return Page{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
