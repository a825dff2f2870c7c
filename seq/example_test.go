package seq_test

import (
	"fmt"

	"github.com/charmingruby/fgp-interop/seq"
)

func ExampleFindIndex() {
	names := []string{"aaa", "bbb", "ccc"}
	fmt.Println(seq.IndexOf(names, seq.Equals("ddd")))
	fmt.Println(seq.FindIndex(names, seq.Equals("aaa")))
	fmt.Println(seq.FindIndex(names, seq.Equals("ddd")))
	// Output:
	// -1
	// Some(0)
	// None
}

func ExampleFind() {
	names := []string{"aaa", "bbb", "ccc"}
	fmt.Println(seq.FindPtr(names, seq.Equals("ddd")) == nil)
	fmt.Println(seq.Find(names, seq.Equals("aaa")))
	fmt.Println(seq.Find(names, seq.Equals("ddd")))
	// Output:
	// true
	// Some(aaa)
	// None
}
