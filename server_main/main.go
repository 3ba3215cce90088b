// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"github.com/SoftbearStudios/quadsat/server"
	"github.com/SoftbearStudios/quadsat/world"
	"github.com/SoftbearStudios/quadsat/world/tree"
	"golang.org/x/net/netutil"
	"io/ioutil"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
)

func main() {
	var (
		capacity       int
		maxConnections int
		port           int
		size           float64
		snapshot       string
	)

	flag.IntVar(&capacity, "capacity", tree.DefaultCapacity, "distinct origins per leaf")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.IntVar(&port, "port", 8192, "http service port")
	flag.Float64Var(&size, "size", 10000, "width and height of the indexed region")
	flag.StringVar(&snapshot, "snapshot", "", "index.json to load instead of starting empty")
	flag.Parse()

	if size <= 0 {
		log.Fatal("invalid argument size: ", size)
	}

	half := float32(size) / 2
	index := tree.NewSync(world.AABBFrom(-half, -half, half*2, half*2), capacity)

	if snapshot != "" {
		buf, err := ioutil.ReadFile(snapshot)
		if err != nil {
			log.Fatal(err)
		}
		if err = index.UnmarshalJSON(buf); err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded %d bounds from %s", index.Count(), snapshot)
	}

	http.HandleFunc("/ws", server.New(index).ServeSocket)

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Println("index server started on port", port)
	log.Fatal("ListenAndServe: ", http.Serve(l, nil))
}
