// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"github.com/SoftbearStudios/quadsat/cloud/db"
	"github.com/SoftbearStudios/quadsat/cloud/fs"
	"github.com/SoftbearStudios/quadsat/world"
	"github.com/SoftbearStudios/quadsat/world/scatter"
	"github.com/SoftbearStudios/quadsat/world/tree"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"log"
	"os"
	"runtime/pprof"
	"time"
)

type options struct {
	size     float64
	capacity int
	count    int
	seed     int64
	queries  int
	radius   float64
	out      string
	bucket   string
	table    string
	region   string
	name     string
}

func main() {
	var cpuProfile string
	var opts options
	flag.Float64Var(&opts.size, "size", 10000, "width and height of the indexed region")
	flag.IntVar(&opts.capacity, "capacity", tree.DefaultCapacity, "distinct origins per leaf")
	flag.IntVar(&opts.count, "count", 100000, "number of bounds to insert")
	flag.Int64Var(&opts.seed, "seed", 1, "scatter seed")
	flag.IntVar(&opts.queries, "queries", 10000, "number of circle queries")
	flag.Float64Var(&opts.radius, "radius", 50, "radius of circle queries")
	flag.StringVar(&opts.out, "out", ".", "directory to write index.json to")
	flag.StringVar(&opts.bucket, "bucket", "", "S3 bucket to upload index.json to instead of -out")
	flag.StringVar(&opts.table, "table", "", "DynamoDB table to record the run in")
	flag.StringVar(&opts.region, "region", "us-east-1", "AWS region of -bucket and -table")
	flag.StringVar(&opts.name, "name", "default", "name the run is recorded under")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	run(opts)
}

func run(opts options) {
	var sess *session.Session
	if opts.bucket != "" || opts.table != "" {
		var err error
		sess, err = session.NewSession(&aws.Config{
			Region: aws.String(opts.region),
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	var filesystem fs.Filesystem = fs.NewLocalFilesystem(opts.out)
	if opts.bucket != "" {
		var err error
		if filesystem, err = fs.NewS3Filesystem(sess, opts.bucket); err != nil {
			log.Fatal(err)
		}
	}

	size := float32(opts.size)
	region := world.AABBFrom(-size/2, -size/2, size, size)
	generator := scatter.New(opts.seed)
	bounds := generator.Bounds(region, scatter.KindAny, 20, opts.count)

	idx := tree.New(region, opts.capacity)
	start := time.Now()
	inserted := 0
	for _, bound := range bounds {
		if idx.Insert(bound) {
			inserted++
		}
	}
	insertTime := time.Since(start)
	log.Printf("inserted %d of %d bounds in %s (%d nodes)", inserted, len(bounds), insertTime, idx.NodeCount())

	radius := float32(opts.radius)
	start = time.Now()
	hits := 0
	for i := 0; i < opts.queries; i++ {
		center := generator.Point(region)
		hits += len(idx.Query(world.Circle{Vec2f: center, R: radius}))
	}
	queryTime := time.Since(start)
	if opts.queries > 0 {
		log.Printf("ran %d queries in %s (%s each, %.1f hits each)", opts.queries, queryTime, queryTime/time.Duration(opts.queries), float64(hits)/float64(opts.queries))
	}

	buf, err := idx.MarshalJSON()
	if err != nil {
		log.Fatal(err)
	}
	snapshot := fmt.Sprintf("%s-%d.json", opts.name, opts.seed)
	if err = filesystem.WriteFile(snapshot, buf); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d byte snapshot %s", len(buf), snapshot)

	if opts.table == "" {
		return
	}

	database, err := db.NewDynamoDBDatabase(sess, opts.table)
	if err != nil {
		log.Fatal(err)
	}
	err = database.PutRun(db.Run{
		Name:     opts.name,
		Time:     time.Now().UnixNano(),
		Seed:     opts.seed,
		Capacity: idx.Capacity(),
		Bounds:   inserted,
		Nodes:    idx.NodeCount(),
		Queries:  opts.queries,
		Hits:     hits,
		InsertNS: insertTime.Nanoseconds(),
		QueryNS:  queryTime.Nanoseconds(),
		Snapshot: snapshot,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Println("recorded run in", opts.table)
}
