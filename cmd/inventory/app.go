package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"ux3270"
)

// App wires the inventory store to the panel dialogs.
type App struct {
	store *Store
	log   *logrus.Logger
}

func (a *App) run() {
	ux3270.NewMenu("Inventory Management System", "INV01", "Select an option").
		AddItem("1", "Add new item", a.addItem).
		AddItem("2", "View all items", a.viewItems).
		AddItem("3", "Work with items", a.workWithItems).
		AddItem("4", "Search items", a.searchItems).
		AddItem("5", "Count stock", a.countStock).
		Run()
}

// locationPrompt backs F4=Prompt on location fields with a pick list of the
// locations already in use.
func (a *App) locationPrompt() (string, bool) {
	locs := a.store.Locations()
	if len(locs) == 0 {
		return "", false
	}
	l := ux3270.NewSelectionList("Select Location", "INV07", []string{"Location"})
	for _, loc := range locs {
		l.AddRow(loc)
	}
	row, ok := l.Show()
	if !ok {
		return "", false
	}
	return row[0], true
}

// itemForm builds the add/change panel, seeded from an existing item when
// changing.
func (a *App) itemForm(title, panelID string, seed *Item) *ux3270.Form {
	f := ux3270.NewForm(title, panelID, "Fill in the item details, press Enter")
	sku := &ux3270.Field{Label: "SKU", Length: 10, Required: true,
		Help: "Stock keeping unit, e.g. ELEC-001"}
	name := &ux3270.Field{Label: "Name", Length: 30, Required: true}
	desc := &ux3270.Field{Label: "Description", Length: 40}
	qty := &ux3270.Field{Label: "Quantity", Length: 6, Type: ux3270.Numeric,
		Required: true, Validator: ux3270.VInteger}
	price := &ux3270.Field{Label: "Price", Length: 10, Type: ux3270.Numeric,
		Validator: ux3270.VDecimal}
	loc := &ux3270.Field{Label: "Location", Length: 20,
		Prompter: ux3270.PrompterFunc(a.locationPrompt)}

	if seed != nil {
		sku.Value = seed.SKU
		sku.Type = ux3270.Readonly // the key never changes
		name.Value = seed.Name
		desc.Value = seed.Desc
		qty.Value = strconv.Itoa(seed.Qty)
		price.Value = strconv.FormatFloat(seed.Price, 'f', 2, 64)
		loc.Value = seed.Location
	}

	f.AddField(sku).AddField(name).AddField(desc)
	f.AddField(qty).AddField(price).AddField(loc)
	return f
}

func itemFromValues(v map[string]string) Item {
	qty, _ := strconv.Atoi(v["Quantity"])
	price, _ := strconv.ParseFloat(v["Price"], 64)
	return Item{
		SKU:      v["SKU"],
		Name:     v["Name"],
		Desc:     v["Description"],
		Qty:      qty,
		Price:    price,
		Location: v["Location"],
	}
}

func (a *App) addItem() {
	values := a.itemForm("Add New Item", "INV02", nil).Show()
	if values == nil {
		return
	}
	item := itemFromValues(values)
	if err := a.store.Add(item); err != nil {
		a.log.WithError(err).WithField("sku", item.SKU).Error("add rejected")
		ux3270.ShowMessage(fmt.Sprintf("ERROR: %v", err), ux3270.MsgError)
		return
	}
	a.log.WithFields(logrus.Fields{"sku": item.SKU, "qty": item.Qty}).Info("item added")
	ux3270.ShowMessage(fmt.Sprintf("ITEM ADDED: %s", item.SKU), ux3270.MsgSuccess)
}

func itemTable(title, panelID string, items []Item) *ux3270.Table {
	t := ux3270.NewTable(title, panelID, []string{"SKU", "Name", "Qty", "Price", "Location"})
	for _, it := range items {
		t.AddRow(it.SKU, it.Name, strconv.Itoa(it.Qty),
			strconv.FormatFloat(it.Price, 'f', 2, 64), it.Location)
	}
	return t
}

func (a *App) viewItems() {
	if len(a.store.Items) == 0 {
		ux3270.ShowMessage("NO ITEMS IN INVENTORY", ux3270.MsgWarning)
		return
	}
	itemTable("Inventory List", "INV05", a.store.Items).Show()
}

func (a *App) workWithItems() {
	pos := &ux3270.Field{Label: "Position to", Length: 10,
		Help: "Show items whose SKU starts at or after this value"}
	for {
		w := ux3270.NewWorkWithList("Work with Items", "INV03", []string{"SKU", "Name", "Qty", "Location"})
		w.AddAction("2", "Change").AddAction("4", "Delete").AddAction("5", "Display")
		w.AddFilter(pos)
		w.OnAdd(a.addItem)
		for _, it := range a.store.Items {
			if pos.Value != "" && it.SKU < strings.ToUpper(pos.Value) {
				continue
			}
			w.AddRow(it.SKU, it.Name, strconv.Itoa(it.Qty), it.Location)
		}

		items, ok := w.Show()
		if !ok {
			return
		}
		for _, wi := range items {
			sku := wi.Row[0]
			switch wi.Code {
			case "2":
				a.changeItem(sku)
			case "4":
				a.deleteItem(sku)
			case "5":
				a.displayItem(sku)
			}
		}
		// Loop so the list rebuilds against the mutated store.
	}
}

func (a *App) changeItem(sku string) {
	item, ok := a.store.Find(sku)
	if !ok {
		ux3270.ShowMessage(fmt.Sprintf("ITEM NOT FOUND: %s", sku), ux3270.MsgError)
		return
	}
	values := a.itemForm("Change Item", "INV02", item).Show()
	if values == nil {
		return
	}
	updated := itemFromValues(values)
	updated.SKU = sku // readonly field, but keep the key authoritative
	if err := a.store.Update(sku, updated); err != nil {
		a.log.WithError(err).WithField("sku", sku).Error("change failed")
		ux3270.ShowMessage(fmt.Sprintf("ERROR: %v", err), ux3270.MsgError)
		return
	}
	a.log.WithField("sku", sku).Info("item changed")
	ux3270.ShowMessage("ITEM UPDATED", ux3270.MsgSuccess)
}

func (a *App) deleteItem(sku string) {
	f := ux3270.NewForm("Confirm Delete", "INV08",
		fmt.Sprintf("Type YES to delete %s, press Enter", sku))
	f.AddField(&ux3270.Field{Label: "Confirm", Length: 3, Required: true,
		Validator: ux3270.VOneOf("YES", "NO")})

	values := f.Show()
	if values == nil || values["Confirm"] != "YES" {
		ux3270.ShowMessage("DELETE CANCELLED", ux3270.MsgInfo)
		return
	}
	if err := a.store.Delete(sku); err != nil {
		ux3270.ShowMessage(fmt.Sprintf("ERROR: %v", err), ux3270.MsgError)
		return
	}
	a.log.WithField("sku", sku).Info("item deleted")
	ux3270.ShowMessage("ITEM DELETED", ux3270.MsgSuccess)
}

// displayItem shows one record as an all-protected panel, acknowledged with
// a single key.
func (a *App) displayItem(sku string) {
	item, ok := a.store.Find(sku)
	if !ok {
		ux3270.ShowMessage(fmt.Sprintf("ITEM NOT FOUND: %s", sku), ux3270.MsgError)
		return
	}
	scr := ux3270.NewScreen("Display Item", "INV09", "")
	row := 3
	add := func(label, value string) {
		scr.AddField(&ux3270.Field{Row: row, Label: label, Length: 40,
			Type: ux3270.Readonly, Value: value})
		row += 2
	}
	add("SKU", item.SKU)
	add("Name", item.Name)
	add("Description", item.Desc)
	add("Quantity", strconv.Itoa(item.Qty))
	add("Price", strconv.FormatFloat(item.Price, 'f', 2, 64))
	add("Location", item.Location)
	scr.Show()
}

func (a *App) searchItems() {
	f := ux3270.NewForm("Search Items", "INV10", "Type a search term, press Enter")
	f.AddField(&ux3270.Field{Label: "Search", Length: 30, Required: true})
	values := f.Show()
	if values == nil {
		return
	}
	term := values["Search"]
	found := a.store.Search(term)
	if len(found) == 0 {
		ux3270.ShowMessage(fmt.Sprintf("NO ITEMS FOUND FOR '%s'", term), ux3270.MsgWarning)
		return
	}
	itemTable("Search Results", "INV11", found).Show()
}

// countStock runs a physical count: every item on one entry grid, counted
// quantity typed beside the book quantity.
func (a *App) countStock() {
	if len(a.store.Items) == 0 {
		ux3270.ShowMessage("NO ITEMS IN INVENTORY", ux3270.MsgWarning)
		return
	}
	e := ux3270.NewTabularEntry("Count Sheet", "INV06")
	e.AddColumn(ux3270.TabularColumn{Name: "SKU", Width: 10})
	e.AddColumn(ux3270.TabularColumn{Name: "Name", Width: 24})
	e.AddColumn(ux3270.TabularColumn{Name: "Book", Width: 6})
	e.AddColumn(ux3270.TabularColumn{Name: "Counted", Width: 6, Editable: true,
		Type: ux3270.Numeric, Required: true, Validator: ux3270.VInteger})
	for _, it := range a.store.Items {
		book := strconv.Itoa(it.Qty)
		e.AddRow(it.SKU, it.Name, book, book)
	}

	rows, ok := e.Show()
	if !ok {
		return
	}
	adjusted := 0
	for _, row := range rows {
		counted, _ := strconv.Atoi(row["Counted"])
		item, found := a.store.Find(row["SKU"])
		if !found || item.Qty == counted {
			continue
		}
		a.log.WithFields(logrus.Fields{
			"sku": item.SKU, "book": item.Qty, "counted": counted,
		}).Info("stock adjusted")
		item.Qty = counted
		adjusted++
	}
	if err := a.store.Save(); err != nil {
		ux3270.ShowMessage(fmt.Sprintf("ERROR: %v", err), ux3270.MsgError)
		return
	}
	ux3270.ShowMessage(fmt.Sprintf("COUNT COMPLETE: %d ADJUSTED", adjusted), ux3270.MsgSuccess)
}
