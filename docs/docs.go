// Package docs registers the OpenAPI description served under /swagger
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
        "/auth/refresh": {
            "post": {
                "description": "Rotates the refresh token of an active session and issues a new access token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Refresh access token",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Refresh token",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Token refreshed"
                    },
                    "400": {
                        "description": "Invalid request format"
                    },
                    "401": {
                        "description": "Invalid, expired or revoked refresh token"
                    }
                }
            }
        },
        "/auth/session": {
            "get": {
                "description": "Returns the session, user, stored role and department scope of the caller",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Current session",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Current session"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/auth/signin": {
            "post": {
                "description": "Authenticates a user and opens a session. When role is given the stored role must match it, otherwise the session is revoked and 403 is returned.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Sign in",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Login credentials",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Signed in successfully"
                    },
                    "400": {
                        "description": "Invalid request format"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    },
                    "403": {
                        "description": "Role mismatch or role lookup failed"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/auth/signout": {
            "post": {
                "description": "Revokes the session behind the access token",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Sign out",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Signed out"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/auth/signup": {
            "post": {
                "description": "Creates a login without a role. An administrator assigns the role afterwards.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "User registration information",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Account created"
                    },
                    "400": {
                        "description": "Invalid request format"
                    },
                    "409": {
                        "description": "Email already exists"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/courses": {
            "post": {
                "description": "Admins create courses in any department, HODs in their own",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Create a course",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Course information",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Course created"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "409": {
                        "description": "Course code already exists"
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "List courses",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "departmentId",
                        "in": "query",
                        "required": false,
                        "description": "Department filter",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "facultyId",
                        "in": "query",
                        "required": false,
                        "description": "Assigned faculty filter",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Courses"
                    }
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Get course",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Course ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Course"
                    },
                    "404": {
                        "description": "Course not found"
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Update course",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Course ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Course information",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Course updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Course not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Delete course",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Course ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Course deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Course not found"
                    }
                }
            }
        },
        "/courses/{id}/faculty": {
            "put": {
                "description": "Assigns a faculty member of the course's department to teach it. A null facultyId unassigns.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courses"
                ],
                "summary": "Assign teaching load",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Course ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Faculty member",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Course assigned"
                    },
                    "400": {
                        "description": "Faculty member is in another department"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Course or faculty member not found"
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Returns cards and tabbed tables for the caller's stored role. Users without a role get a message and no widgets.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "layout"
                ],
                "summary": "Dashboard",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Dashboard"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/departments": {
            "post": {
                "description": "Creates a new department with the provided information",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "departments"
                ],
                "summary": "Create a new department",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Department information",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Department created successfully"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "401": {
                        "description": "Unauthorized - Invalid or missing token"
                    },
                    "403": {
                        "description": "Forbidden - User does not have permission"
                    },
                    "409": {
                        "description": "Department already exists"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "description": "Retrieves a list of all departments ordered by name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "departments"
                ],
                "summary": "Get all departments",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Departments retrieved successfully"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            }
        },
        "/departments/{id}": {
            "get": {
                "description": "Retrieves a specific department by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "departments"
                ],
                "summary": "Get department by ID",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Department ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Department retrieved successfully"
                    },
                    "400": {
                        "description": "Invalid department ID"
                    },
                    "404": {
                        "description": "Department not found"
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "departments"
                ],
                "summary": "Update a department",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Department ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Updated department information",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Department updated successfully"
                    },
                    "400": {
                        "description": "Invalid request format"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Department not found"
                    },
                    "409": {
                        "description": "Name or code already used"
                    }
                }
            },
            "delete": {
                "description": "Deletes a department that has no faculty members or courses",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "departments"
                ],
                "summary": "Delete a department",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Department ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Department deleted successfully"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Department not found"
                    },
                    "409": {
                        "description": "Department has associated data"
                    }
                }
            }
        },
        "/departments/{id}/faculty-members": {
            "post": {
                "description": "Adds a faculty member to the department. With createAccount a login with the faculty role is created in the same transaction.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "faculty-members"
                ],
                "summary": "Add a faculty member",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Department ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Faculty member information",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Faculty member created"
                    },
                    "400": {
                        "description": "Invalid request data or missing password"
                    },
                    "403": {
                        "description": "Forbidden or role lookup failed"
                    },
                    "404": {
                        "description": "Department not found"
                    },
                    "409": {
                        "description": "Email already exists"
                    },
                    "500": {
                        "description": "Internal server error"
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "faculty-members"
                ],
                "summary": "List department faculty",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Department ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Name or email search",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page number",
                        "type": "integer"
                    },
                    {
                        "name": "size",
                        "in": "query",
                        "required": false,
                        "description": "Page size",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Faculty members"
                    },
                    "400": {
                        "description": "Invalid department ID"
                    }
                }
            }
        },
        "/faculty-members": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "faculty-members"
                ],
                "summary": "List faculty members",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "departmentId",
                        "in": "query",
                        "required": false,
                        "description": "Department filter",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Name or email search",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page number",
                        "type": "integer"
                    },
                    {
                        "name": "size",
                        "in": "query",
                        "required": false,
                        "description": "Page size",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Faculty members"
                    }
                }
            }
        },
        "/faculty-members/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "faculty-members"
                ],
                "summary": "My faculty profile",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Faculty member"
                    },
                    "404": {
                        "description": "No faculty profile is linked to this account"
                    }
                }
            }
        },
        "/faculty-members/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "faculty-members"
                ],
                "summary": "Get faculty member",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Faculty member"
                    },
                    "404": {
                        "description": "Faculty member not found"
                    }
                }
            },
            "put": {
                "description": "Replaces the profile fields. Only admins may change the department.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "faculty-members"
                ],
                "summary": "Update faculty member",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Faculty member information",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Faculty member updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Faculty member not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "faculty-members"
                ],
                "summary": "Delete faculty member",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Faculty member deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Faculty member not found"
                    },
                    "409": {
                        "description": "Faculty member still teaches courses"
                    }
                }
            }
        },
        "/faculty-members/{id}/certificates": {
            "post": {
                "description": "Uploads a certificate file (pdf, jpg, jpeg, png, doc, docx, at most 5 MB) and indexes it",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "certificates"
                ],
                "summary": "Upload certificate",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "certificateName",
                        "in": "formData",
                        "required": true,
                        "description": "Certificate name",
                        "type": "string"
                    },
                    {
                        "name": "issueDate",
                        "in": "formData",
                        "required": true,
                        "description": "Issue date (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "Certificate file",
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Certificate uploaded"
                    },
                    "400": {
                        "description": "Invalid form or file type"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Faculty member not found"
                    },
                    "413": {
                        "description": "File too large"
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "certificates"
                ],
                "summary": "List certificates",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Certificates"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Faculty member not found"
                    }
                }
            }
        },
        "/faculty-members/{id}/certificates/{fileName}": {
            "get": {
                "produces": [
                    "application/octet-stream"
                ],
                "tags": [
                    "certificates"
                ],
                "summary": "Download certificate",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "fileName",
                        "in": "path",
                        "required": true,
                        "description": "Stored file name",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Certificate file"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Certificate not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "certificates"
                ],
                "summary": "Delete certificate",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "fileName",
                        "in": "path",
                        "required": true,
                        "description": "Stored file name",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Certificate deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Certificate not found"
                    }
                }
            }
        },
        "/faculty-members/{id}/office-hours": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "List office hours",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Office hours"
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Add office hour",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Office hour",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Office hour added"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/faculty-members/{id}/publications": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "List publications",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Publications"
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Add publication",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Faculty member ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Publication",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Publication added"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/navigation": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "layout"
                ],
                "summary": "Navigation menu",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "path",
                        "in": "query",
                        "required": false,
                        "description": "Current path, used for the page title",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Menu"
                    }
                }
            }
        },
        "/notifications/ws": {
            "get": {
                "description": "Upgrades to a websocket that receives the caller's notifications. Browsers pass the access token as the token query parameter.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "notifications"
                ],
                "summary": "Notification websocket",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "query",
                        "required": false,
                        "description": "Access token",
                        "type": "string"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching protocols"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/office-hours/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Delete office hour",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Office hour ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Office hour deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Office hour not found"
                    }
                }
            }
        },
        "/publications/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Delete publication",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Publication ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Publication deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Publication not found"
                    }
                }
            }
        },
        "/roles": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "List roles",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Roles"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/user-roles": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "List role assignments",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Assignments"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/user-roles/{userId}": {
            "put": {
                "description": "Replaces the single role of a user. The hod role requires a department.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Assign role",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "userId",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Role",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Role assigned"
                    },
                    "400": {
                        "description": "Unknown role or missing department"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "User or department not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Remove role",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "userId",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Role removed"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "No role assigned"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "FacultyHub API",
	Description:      "Role based faculty management: departments, faculty members, courses, certificates and dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
