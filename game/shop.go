package game

import "strconv"

// shopItem describes one black-market upgrade. Leveled items double in
// price per level owned; toggles are one-time purchases.
type shopItem struct {
	key         string
	name        string
	description string
	baseCost    int64
	maxLevel    int
}

var shopCatalog = []shopItem{
	{
		key:         "odds",
		name:        "Odds Augmenter",
		description: "Doubles the raw payout multiplier per level.",
		baseCost:    4000,
		maxLevel:    7,
	},
	{
		key:         "bet",
		name:        "Bet Amplifier",
		description: "Doubles the stake per level. Bigger risk, bigger drain.",
		baseCost:    3000,
		maxLevel:    7,
	},
	{
		key:         "counter",
		name:        "AI Card Counter",
		description: "Reveals live win odds for every call.",
		baseCost:    30000,
		maxLevel:    1,
	},
	{
		key:         "jokers",
		name:        "Double Jokers",
		description: "Doubles the jokers shuffled into every deck.",
		baseCost:    60000,
		maxLevel:    1,
	},
}

// openShop runs the black-market menu until the player leaves.
func (e *Engine) openShop() {
	e.sess.VisitedShop = true
	for {
		e.renderShop()
		choice := normalize(e.io.GetInput("Buy which upgrade? [odds/bet/counter/jokers/back] > "))
		switch choice {
		case "back", "b", "exit", "leave", "":
			e.io.ShowMessage("Leaving the black market.", true)
			return
		case "odds", "o", "1":
			e.purchaseLeveled(shopCatalog[0],
				func() int { return e.sess.Upgrades.OddsLevel },
				func(l int) { e.sess.Upgrades.OddsLevel = l })
		case "bet", "2":
			e.purchaseLeveled(shopCatalog[1],
				func() int { return e.sess.Upgrades.BetLevel },
				func(l int) { e.sess.Upgrades.BetLevel = l })
		case "counter", "c", "ai", "3":
			e.purchaseToggle(shopCatalog[2],
				func() bool { return e.sess.Upgrades.AICounter },
				func() { e.sess.Upgrades.AICounter = true })
		case "jokers", "j", "4":
			e.purchaseToggle(shopCatalog[3],
				func() bool { return e.sess.Upgrades.JokerLevel >= shopCatalog[3].maxLevel },
				func() { e.sess.Upgrades.JokerLevel++ })
		default:
			e.io.ShowMessage("Unknown item. Type the item name or 'back'.", true)
		}
	}
}

func (e *Engine) renderShop() {
	e.io.ShowMessage("", true)
	e.io.ShowMessage("=== BLACK MARKET ===", true)
	e.io.ShowMessage("Balance: "+formatCredits(e.sess.Balance), true)
	e.io.ShowMessage(itemLine(shopCatalog[0], e.sess.Upgrades.OddsLevel), true)
	e.io.ShowMessage(itemLine(shopCatalog[1], e.sess.Upgrades.BetLevel), true)
	e.io.ShowMessage(toggleLine(shopCatalog[2], e.sess.Upgrades.AICounter), true)
	e.io.ShowMessage(toggleLine(shopCatalog[3], e.sess.Upgrades.JokerLevel >= shopCatalog[3].maxLevel), true)
}

func itemLine(item shopItem, level int) string {
	line := item.name + " [Lv " + strconv.Itoa(level) + "/" + strconv.Itoa(item.maxLevel) + "]"
	if level >= item.maxLevel {
		return line + " - MAXED - " + item.description
	}
	return line + " - " + formatCredits(upgradeCost(item, level)) + " - " + item.description
}

func toggleLine(item shopItem, owned bool) string {
	if owned {
		return item.name + " [INSTALLED] - " + item.description
	}
	return item.name + " - " + formatCredits(item.baseCost) + " - " + item.description
}

// upgradeCost doubles per level owned: base, 2x base, 4x base...
func upgradeCost(item shopItem, level int) int64 {
	return item.baseCost << level
}

func (e *Engine) purchaseLeveled(item shopItem, level func() int, set func(int)) {
	if level() >= item.maxLevel {
		e.io.ShowMessage(item.name+" is already maxed out.", true)
		return
	}
	cost := upgradeCost(item, level())
	if !e.spend(cost) {
		return
	}
	set(level() + 1)
	e.io.ShowMessage(item.name+" upgraded to level "+strconv.Itoa(level())+".", true)
	e.checkpoint()
}

func (e *Engine) purchaseToggle(item shopItem, owned func() bool, install func()) {
	if owned() {
		e.io.ShowMessage(item.name+" is already installed.", true)
		return
	}
	if !e.spend(item.baseCost) {
		return
	}
	install()
	e.io.ShowMessage(item.name+" installed.", true)
	e.checkpoint()
}

// spend deducts cost from the balance, refusing overdrafts.
func (e *Engine) spend(cost int64) bool {
	if e.sess.Balance < cost {
		e.io.ShowMessage("Insufficient credits. Need "+formatCredits(cost)+".", true)
		return false
	}
	e.sess.Balance -= cost
	return true
}
