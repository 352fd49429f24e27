// Package database handles connections to the two compared endpoints.
//
// It wraps GORM to configure MySQL connections from the application
// configuration. Both the source and the target side use the same Connect
// function; nothing in this package knows which side it is on.
//
// # Usage
//
//	src, err := database.Connect(cfg.Source)
//	if err != nil {
//	    log.Fatal("source connection failed", err)
//	}
package database
