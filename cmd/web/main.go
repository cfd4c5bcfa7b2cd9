package main

import "campusconnect_backend/internal/app"

func main() {
	app.Run()
}
