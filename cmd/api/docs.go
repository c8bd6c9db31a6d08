package main

// @title           Cafe POS API
// @version         1.0
// @description     API de ponto de venda e recebimento de compras da cafeteria

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
