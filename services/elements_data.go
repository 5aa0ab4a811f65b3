package services

import "vasp-registry/models"

// referenceElements ist das Periodensystem, mit dem eine leere Element-Tabelle befüllt wird.
var referenceElements = []models.Element{
	{Symbol: "H", Name: "Hydrogen", Z: 1},
	{Symbol: "He", Name: "Helium", Z: 2},
	{Symbol: "Li", Name: "Lithium", Z: 3},
	{Symbol: "Be", Name: "Beryllium", Z: 4},
	{Symbol: "B", Name: "Boron", Z: 5},
	{Symbol: "C", Name: "Carbon", Z: 6},
	{Symbol: "N", Name: "Nitrogen", Z: 7},
	{Symbol: "O", Name: "Oxygen", Z: 8},
	{Symbol: "F", Name: "Fluorine", Z: 9},
	{Symbol: "Ne", Name: "Neon", Z: 10},
	{Symbol: "Na", Name: "Sodium", Z: 11},
	{Symbol: "Mg", Name: "Magnesium", Z: 12},
	{Symbol: "Al", Name: "Aluminium", Z: 13},
	{Symbol: "Si", Name: "Silicon", Z: 14},
	{Symbol: "P", Name: "Phosphorus", Z: 15},
	{Symbol: "S", Name: "Sulfur", Z: 16},
	{Symbol: "Cl", Name: "Chlorine", Z: 17},
	{Symbol: "Ar", Name: "Argon", Z: 18},
	{Symbol: "K", Name: "Potassium", Z: 19},
	{Symbol: "Ca", Name: "Calcium", Z: 20},
	{Symbol: "Sc", Name: "Scandium", Z: 21},
	{Symbol: "Ti", Name: "Titanium", Z: 22},
	{Symbol: "V", Name: "Vanadium", Z: 23},
	{Symbol: "Cr", Name: "Chromium", Z: 24},
	{Symbol: "Mn", Name: "Manganese", Z: 25},
	{Symbol: "Fe", Name: "Iron", Z: 26},
	{Symbol: "Co", Name: "Cobalt", Z: 27},
	{Symbol: "Ni", Name: "Nickel", Z: 28},
	{Symbol: "Cu", Name: "Copper", Z: 29},
	{Symbol: "Zn", Name: "Zinc", Z: 30},
	{Symbol: "Ga", Name: "Gallium", Z: 31},
	{Symbol: "Ge", Name: "Germanium", Z: 32},
	{Symbol: "As", Name: "Arsenic", Z: 33},
	{Symbol: "Se", Name: "Selenium", Z: 34},
	{Symbol: "Br", Name: "Bromine", Z: 35},
	{Symbol: "Kr", Name: "Krypton", Z: 36},
	{Symbol: "Rb", Name: "Rubidium", Z: 37},
	{Symbol: "Sr", Name: "Strontium", Z: 38},
	{Symbol: "Y", Name: "Yttrium", Z: 39},
	{Symbol: "Zr", Name: "Zirconium", Z: 40},
	{Symbol: "Nb", Name: "Niobium", Z: 41},
	{Symbol: "Mo", Name: "Molybdenum", Z: 42},
	{Symbol: "Tc", Name: "Technetium", Z: 43},
	{Symbol: "Ru", Name: "Ruthenium", Z: 44},
	{Symbol: "Rh", Name: "Rhodium", Z: 45},
	{Symbol: "Pd", Name: "Palladium", Z: 46},
	{Symbol: "Ag", Name: "Silver", Z: 47},
	{Symbol: "Cd", Name: "Cadmium", Z: 48},
	{Symbol: "In", Name: "Indium", Z: 49},
	{Symbol: "Sn", Name: "Tin", Z: 50},
	{Symbol: "Sb", Name: "Antimony", Z: 51},
	{Symbol: "Te", Name: "Tellurium", Z: 52},
	{Symbol: "I", Name: "Iodine", Z: 53},
	{Symbol: "Xe", Name: "Xenon", Z: 54},
	{Symbol: "Cs", Name: "Caesium", Z: 55},
	{Symbol: "Ba", Name: "Barium", Z: 56},
	{Symbol: "La", Name: "Lanthanum", Z: 57},
	{Symbol: "Ce", Name: "Cerium", Z: 58},
	{Symbol: "Pr", Name: "Praseodymium", Z: 59},
	{Symbol: "Nd", Name: "Neodymium", Z: 60},
	{Symbol: "Pm", Name: "Promethium", Z: 61},
	{Symbol: "Sm", Name: "Samarium", Z: 62},
	{Symbol: "Eu", Name: "Europium", Z: 63},
	{Symbol: "Gd", Name: "Gadolinium", Z: 64},
	{Symbol: "Tb", Name: "Terbium", Z: 65},
	{Symbol: "Dy", Name: "Dysprosium", Z: 66},
	{Symbol: "Ho", Name: "Holmium", Z: 67},
	{Symbol: "Er", Name: "Erbium", Z: 68},
	{Symbol: "Tm", Name: "Thulium", Z: 69},
	{Symbol: "Yb", Name: "Ytterbium", Z: 70},
	{Symbol: "Lu", Name: "Lutetium", Z: 71},
	{Symbol: "Hf", Name: "Hafnium", Z: 72},
	{Symbol: "Ta", Name: "Tantalum", Z: 73},
	{Symbol: "W", Name: "Tungsten", Z: 74},
	{Symbol: "Re", Name: "Rhenium", Z: 75},
	{Symbol: "Os", Name: "Osmium", Z: 76},
	{Symbol: "Ir", Name: "Iridium", Z: 77},
	{Symbol: "Pt", Name: "Platinum", Z: 78},
	{Symbol: "Au", Name: "Gold", Z: 79},
	{Symbol: "Hg", Name: "Mercury", Z: 80},
	{Symbol: "Tl", Name: "Thallium", Z: 81},
	{Symbol: "Pb", Name: "Lead", Z: 82},
	{Symbol: "Bi", Name: "Bismuth", Z: 83},
	{Symbol: "Po", Name: "Polonium", Z: 84},
	{Symbol: "At", Name: "Astatine", Z: 85},
	{Symbol: "Rn", Name: "Radon", Z: 86},
	{Symbol: "Fr", Name: "Francium", Z: 87},
	{Symbol: "Ra", Name: "Radium", Z: 88},
	{Symbol: "Ac", Name: "Actinium", Z: 89},
	{Symbol: "Th", Name: "Thorium", Z: 90},
	{Symbol: "Pa", Name: "Protactinium", Z: 91},
	{Symbol: "U", Name: "Uranium", Z: 92},
	{Symbol: "Np", Name: "Neptunium", Z: 93},
	{Symbol: "Pu", Name: "Plutonium", Z: 94},
	{Symbol: "Am", Name: "Americium", Z: 95},
	{Symbol: "Cm", Name: "Curium", Z: 96},
	{Symbol: "Bk", Name: "Berkelium", Z: 97},
	{Symbol: "Cf", Name: "Californium", Z: 98},
	{Symbol: "Es", Name: "Einsteinium", Z: 99},
	{Symbol: "Fm", Name: "Fermium", Z: 100},
	{Symbol: "Md", Name: "Mendelevium", Z: 101},
	{Symbol: "No", Name: "Nobelium", Z: 102},
	{Symbol: "Lr", Name: "Lawrencium", Z: 103},
	{Symbol: "Rf", Name: "Rutherfordium", Z: 104},
	{Symbol: "Db", Name: "Dubnium", Z: 105},
	{Symbol: "Sg", Name: "Seaborgium", Z: 106},
	{Symbol: "Bh", Name: "Bohrium", Z: 107},
	{Symbol: "Hs", Name: "Hassium", Z: 108},
	{Symbol: "Mt", Name: "Meitnerium", Z: 109},
	{Symbol: "Ds", Name: "Darmstadtium", Z: 110},
	{Symbol: "Rg", Name: "Roentgenium", Z: 111},
	{Symbol: "Cn", Name: "Copernicium", Z: 112},
	{Symbol: "Nh", Name: "Nihonium", Z: 113},
	{Symbol: "Fl", Name: "Flerovium", Z: 114},
	{Symbol: "Mc", Name: "Moscovium", Z: 115},
	{Symbol: "Lv", Name: "Livermorium", Z: 116},
	{Symbol: "Ts", Name: "Tennessine", Z: 117},
	{Symbol: "Og", Name: "Oganesson", Z: 118},
}
