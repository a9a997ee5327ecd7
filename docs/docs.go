// Package docs 注册 Swagger 文档，路由表与各 handler 的注解保持一致
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "注册新用户",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "邮箱密码登录",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "获取当前登录用户（含 email）",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/users": {
            "get": {
                "tags": ["User"],
                "summary": "获取用户列表（公开资料）",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/users/{username}": {
            "get": {
                "tags": ["User"],
                "summary": "根据用户名获取公开资料",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/users/profile": {
            "patch": {
                "tags": ["User"],
                "summary": "更新个人资料",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/users/avatar": {
            "post": {
                "tags": ["User"],
                "summary": "上传头像到对象存储",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/posts/feed": {
            "get": {
                "tags": ["Post"],
                "summary": "获取信息流（新帖在前）",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/posts/user/{userId}": {
            "get": {
                "tags": ["Post"],
                "summary": "获取用户时间线",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/posts/{id}": {
            "get": {
                "tags": ["Post"],
                "summary": "获取帖子详情",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["Post"],
                "summary": "编辑帖子（仅作者）",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Post"],
                "summary": "删除帖子（仅作者）",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/posts": {
            "post": {
                "tags": ["Post"],
                "summary": "发布帖子",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/replies": {
            "post": {
                "tags": ["Reply"],
                "summary": "发表回复",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/replies/post/{postId}": {
            "get": {
                "tags": ["Reply"],
                "summary": "获取帖子的回复（会话正序）",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/replies/{id}": {
            "get": {
                "tags": ["Reply"],
                "summary": "获取回复详情",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["Reply"],
                "summary": "编辑回复（仅作者）",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Reply"],
                "summary": "删除回复（仅作者）",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/likes/posts/{id}": {
            "post": {
                "tags": ["Like"],
                "summary": "点赞帖子（幂等）",
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Like"],
                "summary": "取消点赞帖子（幂等）",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/likes/replies/{id}": {
            "post": {
                "tags": ["Like"],
                "summary": "点赞回复（幂等）",
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Like"],
                "summary": "取消点赞回复（幂等）",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Microblog API",
	Description:      "短内容社交服务：用户、帖子、回复与点赞",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
