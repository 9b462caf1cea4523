// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package docs builds the OpenAPI 3 documents served under
// /swagger/{version}/swagger.json. One document exists per supported API
// version; they differ in the user representation.
package docs

import (
	"github.com/MKhiriev/go-clean-architecture/models"
)

const openAPIVersion = "3.0.3"

type OpenAPISpec struct {
	OpenAPI    string                `json:"openapi"`
	Info       Info                  `json:"info"`
	Paths      map[string]PathItem   `json:"paths"`
	Components Components            `json:"components"`
	Security   []map[string][]string `json:"security,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type PathItem map[string]Operation

type Operation struct {
	Summary     string                `json:"summary"`
	OperationID string                `json:"operationId"`
	Tags        []string              `json:"tags"`
	Parameters  []Parameter           `json:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses"`
	Security    []map[string][]string `json:"security,omitempty"`
}

type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required"`
	Schema   *Schema `json:"schema"`
}

type RequestBody struct {
	Required bool                 `json:"required"`
	Content  map[string]MediaType `json:"content"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema"`
}

type Schema struct {
	Ref        string             `json:"$ref,omitempty"`
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Nullable   bool               `json:"nullable,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
}

type Components struct {
	Schemas         map[string]*Schema        `json:"schemas"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes"`
}

type SecurityScheme struct {
	Type         string `json:"type"`
	Scheme       string `json:"scheme"`
	BearerFormat string `json:"bearerFormat"`
}

// Document returns the OpenAPI document for version. ok is false for
// versions the server does not serve.
func Document(version models.APIVersion, appVersion string) (OpenAPISpec, bool) {
	switch version {
	case models.APIVersion1, models.APIVersion2:
	default:
		return OpenAPISpec{}, false
	}

	userSchema := "User"
	if version == models.APIVersion2 {
		userSchema = "UserWithRole"
	}

	return OpenAPISpec{
		OpenAPI: openAPIVersion,
		Info: Info{
			Title:       "Clean Architecture API " + version.DocName(),
			Description: "User management API. Select the version with the X-API-Version header.",
			Version:     version.String() + " (" + appVersion + ")",
		},
		Paths:      paths(userSchema),
		Components: components(),
		Security:   []map[string][]string{{"bearerAuth": {}}},
	}, true
}

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func jsonContent(schema *Schema) map[string]MediaType {
	return map[string]MediaType{"application/json": {Schema: schema}}
}

func listOf(name string) *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"items":  {Type: "array", Items: ref(name)},
			"length": {Type: "integer"},
		},
	}
}

func errorResponses(codes ...string) map[string]Response {
	descriptions := map[string]string{
		"400": "Invalid data provided",
		"401": "Missing, expired or invalid bearer token",
		"403": "Role is unknown or inactive",
		"404": "Entity not found",
		"409": "Unique constraint violated",
	}

	responses := make(map[string]Response, len(codes))
	for _, code := range codes {
		responses[code] = Response{Description: descriptions[code], Content: jsonContent(ref("Error"))}
	}
	return responses
}

func withResponse(responses map[string]Response, code string, response Response) map[string]Response {
	responses[code] = response
	return responses
}

func idParameter(name string) []Parameter {
	return []Parameter{
		{Name: name, In: "path", Required: true, Schema: &Schema{Type: "integer", Format: "int64"}},
		versionHeader(),
	}
}

func versionHeader() Parameter {
	return Parameter{
		Name:   "X-API-Version",
		In:     "header",
		Schema: &Schema{Type: "string", Enum: []string{"1.0", "2.0"}},
	}
}

func paths(userSchema string) map[string]PathItem {
	// an empty requirement allows anonymous calls
	public := []map[string][]string{{}}

	return map[string]PathItem{
		"/api/version": {
			"get": {
				Summary:     "Application version",
				OperationID: "getVersion",
				Tags:        []string{"App"},
				Security:    public,
				Responses: map[string]Response{
					"200": {Description: "Version info", Content: jsonContent(ref("AppInfo"))},
				},
			},
		},
		"/api/users": {
			"get": {
				Summary:     "List users",
				OperationID: "listUsers",
				Tags:        []string{"Users"},
				Parameters:  []Parameter{versionHeader()},
				Responses: withResponse(errorResponses("401", "403"),
					"200", Response{Description: "Users", Content: jsonContent(listOf(userSchema))}),
			},
			"post": {
				Summary:     "Create user",
				OperationID: "createUser",
				Tags:        []string{"Users"},
				Parameters:  []Parameter{versionHeader()},
				RequestBody: &RequestBody{Required: true, Content: jsonContent(ref("CreateUserRequest"))},
				Responses: withResponse(errorResponses("400", "401", "403", "409"),
					"201", Response{Description: "Created user", Content: jsonContent(ref(userSchema))}),
			},
		},
		"/api/users/{id}": {
			"get": {
				Summary:     "Get user",
				OperationID: "getUser",
				Tags:        []string{"Users"},
				Parameters:  idParameter("id"),
				Responses: withResponse(errorResponses("400", "401", "403", "404"),
					"200", Response{Description: "User", Content: jsonContent(ref(userSchema))}),
			},
			"put": {
				Summary:     "Update user",
				OperationID: "updateUser",
				Tags:        []string{"Users"},
				Parameters:  idParameter("id"),
				RequestBody: &RequestBody{Required: true, Content: jsonContent(ref("UserPatch"))},
				Responses: withResponse(errorResponses("400", "401", "403", "404", "409"),
					"200", Response{Description: "Updated user", Content: jsonContent(ref(userSchema))}),
			},
			"patch": {
				Summary:     "Partially update user",
				OperationID: "patchUser",
				Tags:        []string{"Users"},
				Parameters:  idParameter("id"),
				RequestBody: &RequestBody{Required: true, Content: jsonContent(ref("UserPatch"))},
				Responses: withResponse(errorResponses("400", "401", "403", "404", "409"),
					"200", Response{Description: "Updated user", Content: jsonContent(ref(userSchema))}),
			},
			"delete": {
				Summary:     "Delete user",
				OperationID: "deleteUser",
				Tags:        []string{"Users"},
				Parameters:  idParameter("id"),
				Responses: withResponse(errorResponses("400", "401", "403", "404"),
					"204", Response{Description: "Deleted"}),
			},
		},
		"/api/roles": {
			"get": {
				Summary:     "List roles",
				OperationID: "listRoles",
				Tags:        []string{"Roles"},
				Responses: withResponse(errorResponses("401", "403"),
					"200", Response{Description: "Roles", Content: jsonContent(listOf("UserRoles"))}),
			},
		},
		"/api/roles/{id}": {
			"get": {
				Summary:     "Get role",
				OperationID: "getRole",
				Tags:        []string{"Roles"},
				Parameters:  idParameter("id"),
				Responses: withResponse(errorResponses("400", "401", "403", "404"),
					"200", Response{Description: "Role", Content: jsonContent(ref("UserRoles"))}),
			},
		},
		"/api/branches": {
			"get": {
				Summary:     "List branches",
				OperationID: "listBranches",
				Tags:        []string{"Branches"},
				Responses: withResponse(errorResponses("401", "403"),
					"200", Response{Description: "Branches", Content: jsonContent(listOf("Branch"))}),
			},
		},
	}
}

func components() Components {
	str := func() *Schema { return &Schema{Type: "string"} }
	integer := func() *Schema { return &Schema{Type: "integer", Format: "int64"} }
	dateTime := func() *Schema { return &Schema{Type: "string", Format: "date-time"} }

	user := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"user_id":    integer(),
			"username":   str(),
			"email":      {Type: "string", Format: "email"},
			"full_name":  str(),
			"role_id":    {Type: "integer", Format: "int64", Nullable: true},
			"created_at": dateTime(),
			"updated_at": dateTime(),
		},
	}

	userWithRole := &Schema{Type: "object", Properties: map[string]*Schema{}}
	for name, property := range user.Properties {
		userWithRole.Properties[name] = property
	}
	userWithRole.Properties["role"] = &Schema{Ref: "#/components/schemas/UserRoles", Nullable: true}

	return Components{
		Schemas: map[string]*Schema{
			"User":         user,
			"UserWithRole": userWithRole,
			"UserRoles": {
				Type: "object",
				Properties: map[string]*Schema{
					"role_id":   integer(),
					"role_name": str(),
					"is_active": {Type: "boolean"},
				},
			},
			"Branch": {
				Type: "object",
				Properties: map[string]*Schema{
					"branch_id":   integer(),
					"branch_name": str(),
					"address":     str(),
				},
			},
			"CreateUserRequest": {
				Type:     "object",
				Required: []string{"username", "email", "password"},
				Properties: map[string]*Schema{
					"username":  str(),
					"email":     {Type: "string", Format: "email"},
					"full_name": str(),
					"password":  {Type: "string", Format: "password"},
					"role_id":   integer(),
				},
			},
			"UserPatch": {
				Type: "object",
				Properties: map[string]*Schema{
					"username":   str(),
					"email":      {Type: "string", Format: "email"},
					"full_name":  str(),
					"password":   {Type: "string", Format: "password"},
					"role_id":    integer(),
					"clear_role": {Type: "boolean"},
				},
			},
			"AppInfo": {
				Type: "object",
				Properties: map[string]*Schema{
					"version":                str(),
					"default_api_version":    str(),
					"supported_api_versions": {Type: "array", Items: str()},
				},
			},
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error":    str(),
					"trace_id": str(),
				},
			},
		},
		SecuritySchemes: map[string]SecurityScheme{
			"bearerAuth": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
		},
	}
}
