package main

// @title           Pet Shop API
// @version         1.0
// @description     API de gestão para pet shop: usuários, clientes, pets, agendamentos, estoque e vendas

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
