// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openapi builds the static OpenAPI 3.0 description published next
// to the rendered documentation. The description is fixed data: it does not
// derive paths or schemas from the template text.
package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Build returns the OpenAPI description for the Agriculture Monitoring
// System API. Every call returns an equivalent object regardless of
// template content.
func Build() *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Agriculture Monitoring System API",
			Description: "RESTful API for agricultural data monitoring and management",
			Version:     "1.0.0",
			Contact: &openapi3.Contact{
				Name:  "API Support",
				Email: "api-support@agriculture-monitoring.example.com",
			},
		},
		Servers: openapi3.Servers{
			&openapi3.Server{
				URL:         "https://api.agriculture-monitoring.example.com/v1",
				Description: "Production server",
			},
		},
		Tags: openapi3.Tags{
			&openapi3.Tag{Name: "sensors", Description: "Sensor management endpoints"},
			&openapi3.Tag{Name: "environment", Description: "Environmental data endpoints"},
			&openapi3.Tag{Name: "crops", Description: "Crop management endpoints"},
		},
		Paths: buildPaths(),
		Components: &openapi3.Components{
			Schemas:         buildSchemas(),
			SecuritySchemes: buildSecuritySchemes(),
		},
		Security: openapi3.SecurityRequirements{
			openapi3.SecurityRequirement{"ApiKeyAuth": []string{}},
		},
	}
}

func buildPaths() *openapi3.Paths {
	sensorArray := openapi3.NewArraySchema()
	sensorArray.Items = openapi3.NewSchemaRef("#/components/schemas/Sensor", nil)

	sensorListSchema := openapi3.NewObjectSchema().
		WithProperty("sensors", sensorArray).
		WithProperty("total", openapi3.NewIntegerSchema()).
		WithProperty("page", openapi3.NewIntegerSchema()).
		WithProperty("perPage", openapi3.NewIntegerSchema())

	return openapi3.NewPaths(
		openapi3.WithPath("/sensors", &openapi3.PathItem{
			Get: &openapi3.Operation{
				Summary: "Get all sensors",
				Tags:    []string{"sensors"},
				Responses: openapi3.NewResponses(
					openapi3.WithStatus(200, &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Successful response").
							WithJSONSchema(sensorListSchema),
					}),
				),
			},
		}),
		openapi3.WithPath("/sensors/{sensorId}/data", &openapi3.PathItem{
			Get: &openapi3.Operation{
				Summary: "Get sensor data",
				Tags:    []string{"sensors"},
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewPathParameter("sensorId").
							WithSchema(openapi3.NewStringSchema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("from").
							WithSchema(openapi3.NewStringSchema().WithFormat("date")),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("to").
							WithSchema(openapi3.NewStringSchema().WithFormat("date")),
					},
				},
				Responses: openapi3.NewResponses(
					openapi3.WithStatus(200, &openapi3.ResponseRef{
						Value: openapi3.NewResponse().
							WithDescription("Sensor data retrieved successfully"),
					}),
				),
			},
		}),
	)
}

func buildSchemas() openapi3.Schemas {
	location := openapi3.NewObjectSchema().
		WithProperty("latitude", openapi3.NewFloat64Schema()).
		WithProperty("longitude", openapi3.NewFloat64Schema())

	sensor := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("location", location).
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("lastReading", openapi3.NewStringSchema().WithFormat("date-time")).
		WithProperty("batteryLevel", openapi3.NewFloat64Schema().WithMin(0).WithMax(100))

	weather := openapi3.NewObjectSchema().
		WithProperty("temperature", openapi3.NewFloat64Schema()).
		WithProperty("humidity", openapi3.NewFloat64Schema()).
		WithProperty("precipitation", openapi3.NewFloat64Schema()).
		WithProperty("windSpeed", openapi3.NewFloat64Schema()).
		WithProperty("timestamp", openapi3.NewStringSchema().WithFormat("date-time"))

	crop := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("plantingDate", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("expectedHarvest", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("yield", openapi3.NewFloat64Schema())

	return openapi3.Schemas{
		"Sensor":      openapi3.NewSchemaRef("", sensor),
		"WeatherData": openapi3.NewSchemaRef("", weather),
		"Crop":        openapi3.NewSchemaRef("", crop),
	}
}

func buildSecuritySchemes() openapi3.SecuritySchemes {
	return openapi3.SecuritySchemes{
		"ApiKeyAuth": &openapi3.SecuritySchemeRef{
			Value: &openapi3.SecurityScheme{
				Type: "apiKey",
				In:   "header",
				Name: "X-API-Key",
			},
		},
		"OAuth2ClientCredentials": &openapi3.SecuritySchemeRef{
			Value: &openapi3.SecurityScheme{
				Type: "oauth2",
				Flows: &openapi3.OAuthFlows{
					ClientCredentials: &openapi3.OAuthFlow{
						TokenURL: "https://auth.agriculture-monitoring.example.com/oauth/token",
						Scopes: map[string]string{
							"read:data":  "Read sensor and crop data",
							"write:data": "Manage sensors and crops",
						},
					},
				},
			},
		},
	}
}

// Validate performs the presence checks required of a publishable
// description: version marker, info block, and a paths object.
func Validate(spec *openapi3.T) error {
	if spec.OpenAPI == "" {
		return fmt.Errorf("missing required field: openapi")
	}
	if spec.Info == nil {
		return fmt.Errorf("missing required field: info")
	}
	if spec.Paths == nil {
		return fmt.Errorf("missing required field: paths")
	}
	return nil
}
