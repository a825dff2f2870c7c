package result_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmingruby/fgp-interop/result"
)

func ExampleTryCatch() {
	atoi := func(s string) result.Result[int] {
		return result.TryCatch(func() (int, error) {
			return strconv.Atoi(s)
		}, func(reason any) error {
			return errors.New("not a number")
		})
	}
	fmt.Println(atoi("42"))
	fmt.Println(atoi(""))
	// Output:
	// Ok(42)
	// Err(not a number)
}

func ExampleFold() {
	res := result.Err[string](errors.New("downstream unavailable"))
	fmt.Println(result.Fold(res,
		func(err error) string { return "failed: " + err.Error() },
		func(v string) string { return "ok: " + v },
	))
	// Output:
	// failed: downstream unavailable
}
