// Command demo walks through the panel primitives: a sign-on screen, a
// data-entry form and a table.
package main

import (
	"fmt"

	"ux3270"
)

func main() {
	signOn := ux3270.NewScreen("Sign On", "SYS01", "Type your credentials, press Enter")
	signOn.AddField(&ux3270.Field{Row: 3, Label: "User", Length: 8, Required: true})
	signOn.AddField(&ux3270.Field{Row: 5, Label: "Password", Length: 8, Type: ux3270.Password, Required: true})
	creds := signOn.Show()
	if creds == nil {
		return
	}

	form := ux3270.NewForm("Order Entry", "ORD01", "Fill in the order, press Enter")
	form.AddField(&ux3270.Field{Label: "Item", Length: 20, Required: true})
	form.AddField(&ux3270.Field{Label: "Quantity", Length: 5, Type: ux3270.Numeric,
		Required: true, Validator: ux3270.VInteger})
	form.AddField(&ux3270.Field{Label: "Unit", Length: 4, Default: "EA",
		Validator: ux3270.VOneOf("EA", "BOX", "KG")})
	order := form.Show()
	if order == nil {
		return
	}

	t := ux3270.NewTable("Order Summary", "ORD02", []string{"Field", "Value"})
	t.AddRow("User", creds["User"])
	t.AddRow("Item", order["Item"])
	t.AddRow("Quantity", order["Quantity"])
	t.AddRow("Unit", order["Unit"])
	t.Show()

	fmt.Printf("ordered %s x%s for %s\n", order["Item"], order["Quantity"], creds["User"])
}
