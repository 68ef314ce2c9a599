package mixin_test

import (
	"fmt"

	"github.com/ygrebnov/mixin"
	"github.com/ygrebnov/mixin/behavior"
)

type document struct {
	Title string
	Body  string
}

type documentArgs struct {
	Title string
}

func newDocument(a documentArgs) (*document, error) {
	return &document{Title: a.Title}, nil
}

type timestamps struct {
	CreatedAt string
}

type timestampsArgs struct {
	Now string
}

func newTimestamps(a timestampsArgs) (*timestamps, error) {
	return &timestamps{CreatedAt: a.Now}, nil
}

func ExampleCompose() {
	docs, err := mixin.NewClass(newDocument)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	stamped, err := mixin.NewClass(newTimestamps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	composed, err := mixin.Compose(docs, stamped)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	inst, err := composed.New(mixin.NewArgs(
		documentArgs{Title: "notes"},
		timestampsArgs{Now: "2024-01-02"},
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	title, _ := inst.Field("Title")
	created, _ := inst.Field("CreatedAt")
	fmt.Printf("title=%v created=%v", title, created)

	// Output: title=notes created=2024-01-02
}

func ExampleCompose_behaviors() {
	summarize, err := behavior.New("summary", func(recv behavior.Receiver, _ ...string) (any, error) {
		title, _ := recv.Field("Title")
		created, _ := recv.Field("CreatedAt")
		return fmt.Sprintf("%v (created %v)", title, created), nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	docs, err := mixin.NewClass(newDocument)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	stamped, err := mixin.NewClass(newTimestamps, mixin.WithBehavior(summarize))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	composed, err := mixin.Compose(docs, stamped)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	inst, err := composed.New(mixin.NewArgs(
		documentArgs{Title: "notes"},
		timestampsArgs{Now: "2024-01-02"},
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := inst.Call("summary")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)

	// Output: notes (created 2024-01-02)
}

func ExampleInstance_As() {
	docs, err := mixin.NewClass(newDocument)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	stamped, err := mixin.NewClass(newTimestamps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	composed, err := mixin.Compose(docs, stamped)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	inst, err := composed.New(mixin.NewArgs(
		documentArgs{Title: "notes"},
		timestampsArgs{Now: "2024-01-02"},
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Any struct whose exported fields are a subset of the merged shape can
	// be populated from the instance.
	var view struct {
		Title     string
		CreatedAt string
	}
	if err = inst.As(&view); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s / %s", view.Title, view.CreatedAt)

	// Output: notes / 2024-01-02
}
