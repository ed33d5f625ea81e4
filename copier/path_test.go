package copier_test

import (
	"fmt"

	"graph-copier/copier"
)

func ExamplePath() {
	p := copier.Root.Field("Items").Index(2).Field("Name")
	fmt.Println(p)

	fmt.Println(copier.Root.Key("sku"))
	fmt.Println(copier.Root.Key(7))
	fmt.Println(copier.Root.Index(0).Index(1))

	// Output:
	// root.Items[2].Name
	// root["sku"]
	// root[7]
	// root[0][1]
}
