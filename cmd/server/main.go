package main

import (
	"flag"
	"log"
)

var addr = flag.String("addr", ":9999", "set the address to listen on")

func main() {
	flag.Parse()

	e := newServer()
	log.Fatal(e.Start(*addr))
}
