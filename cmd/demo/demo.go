// Command demo fills the configured store with a few weeks of sample entries.
package main

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/logging"
	"tableflip.dev/oneframe/pkg/store"
)

var titles = []string{
	"Morning run by the river",
	"Rainy bus ride",
	"Dinner with Mina",
	"Finished the puzzle",
	"Too many meetings",
	"New plant on the desk",
	"Late night ramen",
}

func main() {
	log := logging.New("demo", "info")

	p, err := store.Load(nil, store.WithLogger(log))
	if err != nil {
		panic(err)
	}
	defer p.Close()

	ctx := context.Background()
	emotions := diary.AllEmotions()
	start := time.Now().AddDate(0, 0, -27)
	for i := 0; i < 28; i++ {
		// Skip some days so the calendar has gaps.
		if i%3 == 2 {
			continue
		}
		e := diary.New(start.AddDate(0, 0, i), fmt.Sprintf("content://media/external/images/%d", 1000+i), emotions[(i*5)%len(emotions)])
		e.Title = titles[i%len(titles)]
		e.Content = "Sample entry generated by the demo command."
		if err := p.Store(ctx, e); err != nil {
			panic(err)
		}
	}

	all, err := p.ReadAll(ctx)
	if err != nil {
		panic(err)
	}
	for _, e := range all {
		fmt.Println(e.String())
	}
}
