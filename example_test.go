package sortdist_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/sortdist"
	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/distance"
)

func ExampleRunner_Run() {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	_ = blobstore.Put(ctx, store, "input.txt", []byte("3 4\n4 3\n2 5\n1 3\n3 9\n3 3\n"))

	runner, err := sortdist.New(store, sortdist.WithDomain(distance.Domain{Min: 1, Max: 9}))
	if err != nil {
		panic(err)
	}
	defer runner.Close()

	err = runner.Run(ctx, []string{"input.txt"}, func(r sortdist.Result) {
		fmt.Printf("%s: %d records, distance %d\n", r.Name, r.Records, r.Distance)
	})
	if err != nil {
		panic(err)
	}

	// Output:
	// input.txt: 6 records, distance 11
}

func ExampleRunner_Compute() {
	runner, _ := sortdist.New(blobstore.NewMemoryStore())
	defer runner.Close()

	d, _ := runner.Compute(context.Background(),
		[]int64{10000, 10000, 99999},
		[]int64{10000, 99999, 99999},
	)
	fmt.Println(d)

	// Output:
	// 89999
}
