package main

// @title Shopfront API
// @version 1.0
// @description Product search over Elasticsearch plus customers and their favorite products.
// @description Favorites are validated and enriched against an external product catalog.

// @contact.name API Support

// @host localhost:8000
// @BasePath /
