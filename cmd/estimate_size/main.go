package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path"
	"time"

	"github.com/td0m/taskboard/pkg/person"
	"github.com/td0m/taskboard/pkg/seed"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/td0m/taskboard/pkg/tracker"
)

func main() {
	people := 1000
	perPerson := 200
	subtasks := 5
	total := people * perPerson
	file := path.Join(os.TempDir(), "taskboard-seed.yaml")

	tr := board(people, perPerson, subtasks)

	writeTime := measureTime(func() {
		f, err := os.Create(file)
		check(err)
		defer f.Close()
		check(seed.Dump(f, tr))
	})

	readTime := measureTime(func() {
		check(seed.LoadFile(file, newTracker()))
	})

	info, err := os.Stat(file)
	check(err)
	fmt.Printf("Tasks: %d people, %d each (%d total)\n", people, perPerson, total)
	fmt.Printf("File size: %dMB\n", info.Size()/1024/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
}

func newTracker() *tracker.Tracker {
	return tracker.New(person.NewDirectory(), task.NewCatalog())
}

// board builds a synthetic tracker. Half of each person's tasks are
// completed; every study task gets subtasks.
func board(people, perPerson, subtasks int) *tracker.Tracker {
	tr := newTracker()
	types := []*task.Type{
		tr.Types.Insert(tracker.DefaultStudyType, ""),
		tr.Types.Insert("Home", ""),
		tr.Types.Insert("Work", ""),
	}
	start := date.Today()
	for id := 1; id <= people; id++ {
		tr.People.Insert(id, randomString(8), randomString(10), 18+rand.IntN(60))
		for i := range perPerson {
			due := start.AddDays(rand.IntN(365))
			t := task.New(randomString(20), task.Importances[rand.IntN(3)], due,
				date.Clock{Hour: rand.IntN(24), Minute: rand.IntN(60)}, types[rand.IntN(len(types))])
			completed := i%2 == 1
			if tr.IsStudy(t) {
				for range subtasks {
					s, err := task.NewSubTask(randomString(12), randomString(30), float64(rand.IntN(101)))
					check(err)
					t.Subtasks.Append(s)
				}
			}
			_, err := tr.InsertTask(id, t, completed)
			check(err)
		}
	}
	return tr
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(l int) string {
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}
