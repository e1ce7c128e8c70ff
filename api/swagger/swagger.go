package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Habitara API",
        "description": "Back office gateway for multi-tenant real estate portals",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication and token refresh"},
        {"name": "Properties", "description": "Property moderation and visibility"},
        {"name": "Projects", "description": "Development project visibility"},
        {"name": "Blog", "description": "Blog post publication"},
        {"name": "Leads", "description": "Contact form lead follow-up"},
        {"name": "Users", "description": "User administration"},
        {"name": "Agents", "description": "Agent card visibility"},
        {"name": "Public", "description": "Unauthenticated portal surface"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/properties/pending-count": {
            "get": {
                "tags": ["Properties"],
                "summary": "Count properties awaiting moderation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/properties/approve": {
            "post": {
                "tags": ["Properties"],
                "summary": "Approve a pending property",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApprovePropertyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/properties/reject": {
            "post": {
                "tags": ["Properties"],
                "summary": "Reject a pending property with a reason",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RejectPropertyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing reason"}
                }
            }
        },
        "/properties/active": {
            "post": {
                "tags": ["Properties"],
                "summary": "Set a property's active flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetActiveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/properties/featured": {
            "post": {
                "tags": ["Properties"],
                "summary": "Set a property's featured flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetFeaturedRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/properties/{id}/embed-url": {
            "post": {
                "tags": ["Properties"],
                "summary": "Generate a signed embed URL for a property",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/projects/active": {
            "post": {
                "tags": ["Projects"],
                "summary": "Toggle a project's active flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/projects/featured": {
            "post": {
                "tags": ["Projects"],
                "summary": "Toggle a project's featured flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/projects/{id}": {
            "delete": {
                "tags": ["Projects"],
                "summary": "Delete a project",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/blog/featured": {
            "post": {
                "tags": ["Blog"],
                "summary": "Toggle a blog post's featured flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleBlogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/blog/published": {
            "post": {
                "tags": ["Blog"],
                "summary": "Toggle a blog post's publication",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleBlogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leads": {
            "get": {
                "tags": ["Leads"],
                "summary": "List tenant leads",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leads/status": {
            "post": {
                "tags": ["Leads"],
                "summary": "Transition a lead's status",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateLeadStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leads/export": {
            "get": {
                "tags": ["Leads"],
                "summary": "Export tenant leads as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/users/role": {
            "post": {
                "tags": ["Users"],
                "summary": "Change a user's role",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeUserRoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Self role change rejected"}
                }
            }
        },
        "/users/active": {
            "post": {
                "tags": ["Users"],
                "summary": "Set a user's active flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetActiveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Self deactivation rejected"}
                }
            }
        },
        "/agents/active": {
            "post": {
                "tags": ["Agents"],
                "summary": "Set an agent card's active flag",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetActiveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/profile": {
            "put": {
                "tags": ["Users"],
                "summary": "Update the caller's own profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/public/contact": {
            "post": {
                "tags": ["Public"],
                "summary": "Capture a contact form lead",
                "parameters": [
                    {"name": "X-Tenant-ID", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/public/properties/embed/{token}": {
            "get": {
                "tags": ["Public"],
                "summary": "Resolve a signed property embed token",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown or expired token"}
                }
            }
        },
        "/public/content/{slug}": {
            "get": {
                "tags": ["Public"],
                "summary": "Fetch marketing content by slug",
                "parameters": [
                    {"name": "X-Tenant-ID", "in": "header", "required": true, "type": "string"},
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "RefreshTokenRequest": {
            "type": "object",
            "properties": {
                "refreshToken": {"type": "string"}
            },
            "required": ["refreshToken"]
        },
        "ApprovePropertyRequest": {
            "type": "object",
            "properties": {
                "propertyId": {"type": "string"}
            },
            "required": ["propertyId"]
        },
        "RejectPropertyRequest": {
            "type": "object",
            "properties": {
                "propertyId": {"type": "string"},
                "reason": {"type": "string"}
            },
            "required": ["propertyId", "reason"]
        },
        "SetActiveRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "isActive": {"type": "boolean"}
            },
            "required": ["id", "isActive"]
        },
        "SetFeaturedRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "isFeatured": {"type": "boolean"}
            },
            "required": ["id", "isFeatured"]
        },
        "ToggleProjectRequest": {
            "type": "object",
            "properties": {
                "projectId": {"type": "string"}
            },
            "required": ["projectId"]
        },
        "ToggleBlogRequest": {
            "type": "object",
            "properties": {
                "postId": {"type": "string"}
            },
            "required": ["postId"]
        },
        "UpdateLeadStatusRequest": {
            "type": "object",
            "properties": {
                "submissionId": {"type": "string"},
                "status": {"type": "string", "enum": ["new", "contacted", "following-up", "converted", "discarded"]},
                "notes": {"type": "string"}
            },
            "required": ["submissionId", "status"]
        },
        "ChangeUserRoleRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "role": {"type": "integer", "enum": [1, 2, 3]}
            },
            "required": ["userId", "role"]
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "phone": {"type": "string"}
            },
            "required": ["full_name"]
        },
        "ContactRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "message": {"type": "string"},
                "propertyId": {"type": "string"}
            },
            "required": ["firstName", "lastName", "email", "phone", "message"]
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
