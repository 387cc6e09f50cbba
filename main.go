package main

import "saferide/internal/app"

// @title           SafeRide API
// @version         1.0
// @description     Ride-hailing backend: users, two-party chats, delivery orders.
// @BasePath        /
func main() {
	app.Run()
}
