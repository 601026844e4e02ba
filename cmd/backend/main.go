package main

import (
	"gestaocon/internal/api"
)

func main() {
	api.StartServer()
}
