package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.lepak.sg/ordmap/tree/aa"
)

var (
	seed   = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num    = flag.Int("n", 10, "number of nodes in the tree")
	remove = flag.Int("r", 0, "number of random keys to remove after building")
	values = flag.Bool("v", false, "print values (insertion order) as well as keys")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tr := aa.BuildRandom(*num, *seed)

	inorder := make([]int, 0, *num)
	for n := tr.First(); n != nil; n = tr.Successor(n) {
		inorder = append(inorder, n.Key)
	}

	fmt.Println("seed:", *seed)
	fmt.Println("inorder:", inorder)

	if *remove > 0 {
		removed := aa.RemoveRandom(tr, *remove, *num, *seed+1)
		fmt.Println("removed:", removed)
	}

	fmt.Println("tree:")
	fmt.Println(tr.Sprint(*values))

	fmt.Println("size:", tr.Len(), "height:", tr.Height(), "level:", tr.Level())

	if err := tr.Check(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
