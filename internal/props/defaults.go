// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package props

// DefaultDefinitions is the built-in property id table, covering the
// ids observed in retail save/stash data plus the provisional entries
// marked [?] where the field width is inferred rather than confirmed.
var DefaultDefinitions = []Definition{
	{ID: 0, FieldWidth: []int{10}, Format: "{:+d} to Strength", Offsets: []int64{32}},
	{ID: 1, FieldWidth: []int{10}, Format: "{:+d} to Energy", Offsets: []int64{32}},
	{ID: 2, FieldWidth: []int{10}, Format: "{:+d} to Dexterity", Offsets: []int64{32}},
	{ID: 3, FieldWidth: []int{10}, Format: "{:+d} to Vitality", Offsets: []int64{32}},
	{ID: 7, FieldWidth: []int{10}, Format: "{:+d} to Life", Offsets: []int64{32}},
	{ID: 9, FieldWidth: []int{10}, Format: "{:+d} to Mana", Offsets: []int64{32}},
	{ID: 11, FieldWidth: []int{10}, Format: "{:+d} Maximum Stamina", Offsets: []int64{32}},
	{ID: 16, FieldWidth: []int{9}, Format: "{:+d}% Enhanced Defense", Offsets: nil},
	{ID: 17, FieldWidth: []int{9, 9}, Format: "{:+d}% Enhanced Damage", Offsets: nil},
	{ID: 19, FieldWidth: []int{10}, Format: "{:+d} to Attack Rating", Offsets: nil},
	{ID: 20, FieldWidth: []int{6}, Format: "{:+d}% Increased Chance of Blocking", Offsets: nil},
	{ID: 21, FieldWidth: []int{8}, Format: "{:+d} to Minimum Damage", Offsets: nil},
	{ID: 22, FieldWidth: []int{9}, Format: "{:+d} to Maximum Damage", Offsets: nil},
	{ID: 23, FieldWidth: []int{8}, Format: "{:+d} to Minimum Damage", Offsets: nil},
	{ID: 24, FieldWidth: []int{9}, Format: "{:+d} to Maximum Damage", Offsets: nil},
	{ID: 27, FieldWidth: []int{8}, Format: "Regenerate Mana {:d}%", Offsets: nil},
	{ID: 28, FieldWidth: []int{8}, Format: "Heal Stamina Plus {:d}%", Offsets: nil},
	{ID: 31, FieldWidth: []int{11}, Format: "{:+d} Defense", Offsets: []int64{10}},
	{ID: 32, FieldWidth: []int{10}, Format: "{:+d} Defense vs. Missile", Offsets: nil},
	{ID: 33, FieldWidth: []int{10}, Format: "{:+d} Defense vs. Melee", Offsets: nil},
	{ID: 34, FieldWidth: []int{16}, Format: "Damage Reduced by {:d}", Offsets: nil},
	{ID: 35, FieldWidth: []int{16}, Format: "Magic Damage Reduced by {:d}", Offsets: nil},
	{ID: 36, FieldWidth: []int{8}, Format: "Damage Reduced by {:+d}%", Offsets: nil},
	{ID: 37, FieldWidth: []int{8}, Format: "Magic Resist {:+d}%", Offsets: []int64{50}},
	{ID: 38, FieldWidth: []int{5}, Format: "+{:d}% to Maximum Magic Resist", Offsets: nil},
	{ID: 39, FieldWidth: []int{8}, Format: "Fire Resist {:+d}%", Offsets: []int64{50}},
	{ID: 40, FieldWidth: []int{5}, Format: "+{:d}% to max fire resist", Offsets: nil},
	{ID: 41, FieldWidth: []int{8}, Format: "Lightning Resist {:+d}%", Offsets: []int64{50}},
	{ID: 42, FieldWidth: []int{5}, Format: "+{:d}% to max lightning resist", Offsets: nil},
	{ID: 43, FieldWidth: []int{8}, Format: "Cold Resist {:+d}%", Offsets: []int64{50}},
	{ID: 44, FieldWidth: []int{5}, Format: "+{:d}% to max cold resist", Offsets: nil},
	{ID: 45, FieldWidth: []int{8}, Format: "Poison Resist {:+d}%", Offsets: []int64{50}},
	{ID: 46, FieldWidth: []int{5}, Format: "{:+d} to max Poison Resist", Offsets: nil},
	{ID: 48, FieldWidth: []int{10, 11}, Format: "Adds {:d}-{:d} fire damage", Offsets: nil},
	{ID: 50, FieldWidth: []int{10, 11}, Format: "Adds {:d}-{:d} lightning damage", Offsets: nil},
	{ID: 52, FieldWidth: []int{10, 11}, Format: "Adds {:d}-{:d} magic damage", Offsets: nil},
	{ID: 54, FieldWidth: []int{10, 11, 10}, Format: "Adds {:d}-{:d} cold damage", Offsets: nil},
	{ID: 57, FieldWidth: []int{13, 13, 16}, Format: "+({:d}-{:d})/256 poison damage over {:d}/25 s", Offsets: nil},
	{ID: 60, FieldWidth: []int{8}, Format: "{:d}% Life Stolen per Hit", Offsets: []int64{50}},
	{ID: 62, FieldWidth: []int{8}, Format: "{:d}% Mana Stolen per Hit", Offsets: []int64{50}},
	{ID: 66, FieldWidth: []int{12}, Format: "Hit Stuns Enemies <{:d}>", Offsets: nil},
	{ID: 73, FieldWidth: []int{9}, Format: "[?][73] <{:d}>", Offsets: nil},
	{ID: 74, FieldWidth: []int{16}, Format: "+{:d} Replenish Life", Offsets: []int64{3000}},
	{ID: 75, FieldWidth: []int{7}, Format: "Increased Maximum Durability {:d}%", Offsets: []int64{20}},
	{ID: 76, FieldWidth: []int{8}, Format: "Increase Maximum Life {:d}%", Offsets: []int64{10}},
	{ID: 77, FieldWidth: []int{8}, Format: "Increase Maximum Mana {:d}%", Offsets: []int64{10}},
	{ID: 78, FieldWidth: []int{16}, Format: "Attacker takes damage of {:d}", Offsets: nil},
	{ID: 79, FieldWidth: []int{13}, Format: "{:d}% Extra Gold from Monsters", Offsets: nil},
	{ID: 80, FieldWidth: []int{13}, Format: "{:d}% Better Chance of Getting Magic Items", Offsets: nil},
	{ID: 81, FieldWidth: []int{7}, Format: "Knockback", Offsets: nil},
	{ID: 83, FieldWidth: []int{3, 5}, Format: "+{1:d} to Class<{0:d}> Skill Levels", Offsets: nil},
	{ID: 85, FieldWidth: []int{12}, Format: "{:d}% to Experience Gained", Offsets: []int64{50}},
	{ID: 86, FieldWidth: []int{7}, Format: "{:+d} Life after each Kill", Offsets: nil},
	{ID: 87, FieldWidth: []int{7}, Format: "Reduces all Vendor Prices {:d}%", Offsets: nil},
	{ID: 89, FieldWidth: []int{5}, Format: "{:+d} to Light Radius", Offsets: []int64{12}},
	{ID: 91, FieldWidth: []int{12}, Format: "Requirements {:+d}%", Offsets: []int64{100}},
	{ID: 92, FieldWidth: []int{12}, Format: "Unknown<92>: {:+d}", Offsets: nil},
	{ID: 93, FieldWidth: []int{9}, Format: "{:+d}% Increased Attack Speed", Offsets: []int64{20}},
	{ID: 96, FieldWidth: []int{9}, Format: "{:+d}% Faster Run/Walk", Offsets: []int64{100}},
	{ID: 97, FieldWidth: []int{10, 7}, Format: "+{1:d} to Skill<{0:d}> (All) [97]", Offsets: nil},
	{ID: 98, FieldWidth: []int{10}, Format: "ConvertTo[?]<98>: {:d}", Offsets: nil},
	{ID: 99, FieldWidth: []int{8}, Format: "{:+d}% Faster Hit Recovery", Offsets: []int64{20}},
	{ID: 102, FieldWidth: []int{8}, Format: "{:+d}% Faster Block Rate", Offsets: []int64{20}},
	{ID: 105, FieldWidth: []int{9}, Format: "{:+d}% Faster Cast Rate", Offsets: []int64{50}},
	{ID: 107, FieldWidth: []int{10, 7}, Format: "+{1:d} to Skill<{0:d}> (Class Only) [107]", Offsets: nil},
	{ID: 108, FieldWidth: []int{3}, Format: "Slain Monster Rest in Peace <{:+d}>%", Offsets: nil},
	{ID: 109, FieldWidth: []int{9}, Format: "Shorter Curse Duration {:+d}%", Offsets: []int64{100}},
	{ID: 110, FieldWidth: []int{8}, Format: "Poison Length Reduced by {:d}%", Offsets: []int64{20}},
	{ID: 112, FieldWidth: []int{7}, Format: "Hit Causes Monster to Flee {:d}%", Offsets: []int64{10}},
	{ID: 113, FieldWidth: []int{7}, Format: "Hit Blinds Target ({:d})", Offsets: nil},
	{ID: 114, FieldWidth: []int{7}, Format: "{:d}% Damage Taken Goes To Mana", Offsets: nil},
	{ID: 115, FieldWidth: []int{1}, Format: "Ignore Target's Defense", Offsets: nil},
	{ID: 116, FieldWidth: []int{7}, Format: "-{:d}% Target Defense", Offsets: nil},
	{ID: 117, FieldWidth: []int{7}, Format: "Prevent Monster Heal", Offsets: nil},
	{ID: 118, FieldWidth: []int{1}, Format: "Half Freeze Duration", Offsets: nil},
	{ID: 119, FieldWidth: []int{12}, Format: "{:+d}% Bonus to Attack Rating", Offsets: []int64{20}},
	{ID: 120, FieldWidth: []int{7}, Format: "{:+d} to Monster Defense Per Hit", Offsets: []int64{128}},
	{ID: 121, FieldWidth: []int{12}, Format: "{:+d}% Damage to Demons", Offsets: []int64{20}},
	{ID: 122, FieldWidth: []int{12}, Format: "{:+d}% Damage to Undead", Offsets: []int64{20}},
	{ID: 123, FieldWidth: []int{13}, Format: "{:+d} to Attack Rating against Demons", Offsets: []int64{128}},
	{ID: 124, FieldWidth: []int{13}, Format: "{:+d} to Attack Rating against Undead", Offsets: []int64{128}},
	{ID: 127, FieldWidth: []int{5}, Format: "+{:d} to All Skills", Offsets: nil},
	{ID: 128, FieldWidth: []int{16}, Format: "Attacker Takes Lightning Damage of {:+d}", Offsets: nil},
	{ID: 134, FieldWidth: []int{5}, Format: "Freezes Target <{:d}>", Offsets: nil},
	{ID: 135, FieldWidth: []int{9}, Format: "{:d}% Chance of Open Wounds", Offsets: nil},
	{ID: 136, FieldWidth: []int{9}, Format: "{:d}% Chance of Crushing Blow", Offsets: nil},
	{ID: 138, FieldWidth: []int{7}, Format: "{:+d} to Mana after each Kill", Offsets: nil},
	{ID: 139, FieldWidth: []int{7}, Format: "{:+d} to Life after each Kill", Offsets: nil},
	{ID: 140, FieldWidth: []int{7}, Format: "Unknown<140>: {:d}", Offsets: nil},
	{ID: 141, FieldWidth: []int{8}, Format: "{:d}% Deadly Strke", Offsets: nil},
	{ID: 142, FieldWidth: []int{8}, Format: "Fire Absorb {:d}%", Offsets: nil},
	{ID: 143, FieldWidth: []int{16}, Format: "{:d} Fire Absorb", Offsets: nil},
	{ID: 144, FieldWidth: []int{8}, Format: "Lightning Absorb {:d}%", Offsets: nil},
	{ID: 145, FieldWidth: []int{16}, Format: "{:d} Lightning Absorb", Offsets: nil},
	{ID: 146, FieldWidth: []int{8}, Format: "Magic Absorb {:d}%", Offsets: nil},
	{ID: 147, FieldWidth: []int{16}, Format: "{:d} Magic Absorb", Offsets: nil},
	{ID: 148, FieldWidth: []int{8}, Format: "Cold Absorb {:d}%", Offsets: nil},
	{ID: 149, FieldWidth: []int{16}, Format: "{:d} Cold Absorb", Offsets: nil},
	{ID: 150, FieldWidth: []int{7}, Format: "Slows Target by {:d}%", Offsets: nil},
	{ID: 151, FieldWidth: []int{10, 8}, Format: "Level {1:d} Skill<{0:d}> When Equipped", Offsets: nil},
	{ID: 152, FieldWidth: []int{1}, Format: "Indestructible", Offsets: nil},
	{ID: 153, FieldWidth: []int{1}, Format: "Cannot Be Frozen", Offsets: nil},
	{ID: 154, FieldWidth: []int{8}, Format: "{:+d}% Slower Stamina Drain", Offsets: []int64{90}},
	{ID: 155, FieldWidth: []int{10, 7}, Format: "{1:d}% reanimate as: Mob<{0:d}>", Offsets: nil},
	{ID: 156, FieldWidth: []int{7}, Format: "Piercing Attack <{:d}>", Offsets: nil},
	{ID: 157, FieldWidth: []int{7}, Format: "Fires Magic Arrows <{:d}>", Offsets: nil},
	{ID: 158, FieldWidth: []int{7}, Format: "Fires Explosive Arrows or Bolds <{:d}>", Offsets: nil},
	{ID: 159, FieldWidth: []int{9}, Format: "{:+d} to Minimum Damage", Offsets: nil},
	{ID: 160, FieldWidth: []int{10}, Format: "{:+d} to Maximum Damage", Offsets: nil},
	{ID: 181, FieldWidth: []int{9}, Format: "[?][181] ??? <{:d}>", Offsets: nil},
	{ID: 188, FieldWidth: []int{16, 3}, Format: "+{1:d} to Skill<{0:d}> [188][?]", Offsets: nil},
	{ID: 195, FieldWidth: []int{6, 10, 7}, Format: "{2:d}% Chance to cast Level {0:d} Skill<{1:d}> on attack", Offsets: nil},
	{ID: 196, FieldWidth: []int{6, 10, 7}, Format: "{2:d}% Chance to cast Level {0:d} Skill<{1:d}> when you Kill an Enemy", Offsets: nil},
	{ID: 197, FieldWidth: []int{6, 10, 7}, Format: "{2:d}% Chance to cast Level {0:d} Skill<{1:d}> when you Die", Offsets: nil},
	{ID: 198, FieldWidth: []int{6, 10, 7}, Format: "{2:d}% Chance to cast Level {0:d} Skill<{1:d}> on striking", Offsets: nil},
	{ID: 201, FieldWidth: []int{6, 10, 7}, Format: "{2:d}% Chance to cast Level {0:d} Skill<{1:d}> when struck", Offsets: nil},
	{ID: 204, FieldWidth: []int{6, 10, 8, 8}, Format: "Level {:d} Skill<{:d}> ({:d}/{:d} charges)", Offsets: nil},
	{ID: 214, FieldWidth: []int{6}, Format: "{:+d}/8 to Defense (Based on Character Level)", Offsets: nil},
	{ID: 215, FieldWidth: []int{6}, Format: "{:+d}/16% Enhanced Defense (Based on Character Level)", Offsets: nil},
	{ID: 217, FieldWidth: []int{6}, Format: "{:+d}/16 to Mana (Based on Character Level)", Offsets: nil},
	{ID: 218, FieldWidth: []int{6}, Format: "{:+d}/16 to Maximum Damage (Based on Character Level)", Offsets: nil},
	{ID: 220, FieldWidth: []int{6}, Format: "{:+d}/16 to Strength (Based on Character Level)", Offsets: nil},
	{ID: 221, FieldWidth: []int{6}, Format: "{:+d}/16 to Dexterity (Based on Character Level)", Offsets: nil},
	{ID: 222, FieldWidth: []int{6}, Format: "{:+d}/16 to Energy (Based on Character Level)", Offsets: nil},
	{ID: 224, FieldWidth: []int{6}, Format: "{:+d}/2 to Attack Rating (Based on Character Level)", Offsets: nil},
	{ID: 225, FieldWidth: []int{6}, Format: "{:+d}/8% Bonus to Attack Rating (Based on Character Level)", Offsets: nil},
	{ID: 228, FieldWidth: []int{6}, Format: "Indestructible [?]", Offsets: nil},
	{ID: 230, FieldWidth: []int{6}, Format: "Cold Resist {:d}/16 (Based on Character Level)", Offsets: nil},
	{ID: 231, FieldWidth: []int{6}, Format: "Fire Resist {:d}/16 (Based on Character Level)", Offsets: nil},
	{ID: 232, FieldWidth: []int{6}, Format: "{:+d}/16 to Lightning Resist (Based on Character Level)", Offsets: nil},
	{ID: 233, FieldWidth: []int{6}, Format: "{:+d}/16 to Poison Resist (Based on Character Level)", Offsets: nil},
	{ID: 239, FieldWidth: []int{6}, Format: "{:+d}/16 Extra Gold form Monsters (Based on Character Level)", Offsets: nil},
	{ID: 240, FieldWidth: []int{6}, Format: "{:+d}/16 Better Chance of Getting Magic Items (Based on Character Level)", Offsets: nil},
	{ID: 252, FieldWidth: []int{6}, Format: "Repairs 1 durability in 100/{:d} seconds", Offsets: nil},
	{ID: 253, FieldWidth: []int{8}, Format: "Replenishes Quantity ({:+d}/??)[?]", Offsets: nil},
	{ID: 254, FieldWidth: []int{8}, Format: "Increaed Stack Size ({:+d})", Offsets: nil},
	{ID: 329, FieldWidth: []int{12}, Format: "{:+d}% to Fire Skill Damage", Offsets: []int64{50}},
	{ID: 330, FieldWidth: []int{12}, Format: "{:+d}% to Lightning Skill Damage", Offsets: []int64{50}},
	{ID: 331, FieldWidth: []int{12}, Format: "{:+d}% to Cold Skill Damage", Offsets: []int64{50}},
	{ID: 332, FieldWidth: []int{12}, Format: "{:+d}% to Poison Skill Damage", Offsets: []int64{50}},
	{ID: 333, FieldWidth: []int{9}, Format: "-{:d}% to Enemy Lightning Resistance", Offsets: nil},
	{ID: 334, FieldWidth: []int{9}, Format: "-{:d}% to Enemy Lightning Resistance", Offsets: nil},
	{ID: 335, FieldWidth: []int{9}, Format: "-{:d}% to Enemy Cold Resistance", Offsets: nil},
	{ID: 336, FieldWidth: []int{9}, Format: "-{:d}% to Enemy Poison Resistance", Offsets: nil},
	{ID: 338, FieldWidth: []int{7}, Format: "Chance to dodge melee attack when still +{:d}%", Offsets: nil},
	{ID: 339, FieldWidth: []int{7}, Format: "Chance to dodge missile attack when still +{:d}%", Offsets: nil},
	{ID: 340, FieldWidth: []int{7}, Format: "Chance to dodge attacks when moving +{:d}%", Offsets: nil},
	{ID: 349, FieldWidth: []int{8}, Format: "Elemental resistance of summons {:+d}%", Offsets: nil},
	{ID: 357, FieldWidth: []int{12}, Format: "{:+d}% to Magic Skill Damage", Offsets: []int64{50}},
	{ID: 359, FieldWidth: []int{12}, Format: "Magic Affinity Bonus {:+d}%", Offsets: []int64{100}},
	{ID: 362, FieldWidth: []int{12}, Format: "Extra Throwing Potion Damage +{:d}%", Offsets: nil},
	{ID: 365, FieldWidth: []int{8}, Format: "Strength bonus {:d}%", Offsets: []int64{10}},
	{ID: 366, FieldWidth: []int{8}, Format: "Energy bonus {:d}%", Offsets: []int64{10}},
	{ID: 367, FieldWidth: []int{8}, Format: "Dexterity bonus {:d}%", Offsets: []int64{10}},
	{ID: 372, FieldWidth: []int{8}, Format: "[?][372] <{:d}>", Offsets: nil},
	{ID: 388, FieldWidth: []int{9}, Format: "{:d}% Extra Base Life to Summons", Offsets: []int64{50}},
	{ID: 407, FieldWidth: []int{6, 10, 7}, Format: "{2:d}% Chance to cast Level {0:d} Skill<{1:d}> when struck", Offsets: nil},
	{ID: 441, FieldWidth: []int{7}, Format: "Extra resistance from temporary resistance potions +{:d}%", Offsets: nil},
	{ID: 443, FieldWidth: []int{15}, Format: "+{:d} Extra duration (in frames) to all resistance potions", Offsets: nil},
	{ID: 444, FieldWidth: []int{15}, Format: "+{:d} Extra duration (in frames) to stamina potions", Offsets: nil},
	{ID: 446, FieldWidth: []int{9}, Format: "Stamina Bonus {:d}%", Offsets: []int64{60}},
	{ID: 449, FieldWidth: []int{7}, Format: "bonus healing from normal rejuvination potions {:d}%", Offsets: nil},
	{ID: 451, FieldWidth: []int{4}, Format: "Boosts the effectiveness of mana potions by x {:d}", Offsets: nil},
	{ID: 465, FieldWidth: []int{9}, Format: "Boosts Double Throw Damage by {:d}%", Offsets: nil},
	{ID: 471, FieldWidth: []int{9}, Format: "Boosts damage of Hireling Skills by {:d}%", Offsets: nil},
	{ID: 479, FieldWidth: []int{5}, Format: "+{:d} extra Potions launched from Potion Launcher skill", Offsets: nil},
	{ID: 495, FieldWidth: []int{6}, Format: "+{:d}/?? Min/Max Fire Damage (Increases with kills)[?]", Offsets: nil},
	{ID: 502, FieldWidth: []int{15}, Format: "+{:d} Extra duration (in frames) to RIP Potions", Offsets: nil},
	{ID: 505, FieldWidth: []int{15}, Format: "+{:d} Extra duration (in frames) to portable shrines", Offsets: nil},
	{ID: 508, FieldWidth: []int{12}, Format: "Boosts Summon Damage by {:d}%", Offsets: nil},
}

// NewDefaultTable builds a Table from DefaultDefinitions.
func NewDefaultTable() *Table {
	return NewTable(DefaultDefinitions)
}
