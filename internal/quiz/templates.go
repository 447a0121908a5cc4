package quiz

// Variant selects how a narrative template is instantiated.
type Variant string

const (
	// VariantStandard draws both factors and substitutes {num1}, {num2}.
	VariantStandard Variant = "standard"

	// VariantComparison asks how much more {num1}×{larger} is than
	// {num1}×{smaller}; the stored Factor2 is the difference.
	VariantComparison Variant = "comparison"

	// VariantComparisonLess is the "how much less" mirror of comparison.
	VariantComparisonLess Variant = "comparison_less"

	// VariantCombination repeats the same quantity a fixed number of
	// times; Factor2 comes from the template's FixedFactor2.
	VariantCombination Variant = "combination"

	// VariantDouble asks for twice {num1}; Factor2 is always 2.
	VariantDouble Variant = "double"
)

// NarrativeTemplate is one fill-in-the-blank word problem.
type NarrativeTemplate struct {
	ID       int
	Text     string
	Unit     string
	Category string
	Variant  Variant // empty means VariantStandard

	// FixedFactor1 pins Factor1 to a real-world constant when non-zero
	// (e.g. a week has 7 days).
	FixedFactor1 int

	// FixedFactor2 supplies Factor2 for combination templates ("two
	// friends" → 2).
	FixedFactor2 int
}

// Category names used by the bank.
const (
	CategorySchool    = "school"
	CategoryShopping  = "shopping"
	CategoryFood      = "food"
	CategoryAnimals   = "animals"
	CategorySports    = "sports"
	CategoryTransport = "transport"
	CategoryNature    = "nature"
	CategoryHome      = "home"
	CategoryHolidays  = "holidays"
	CategoryMath      = "math"
)

// Templates returns the full template bank. The returned slice is shared;
// callers must not mutate it.
func Templates() []NarrativeTemplate {
	return narrativeTemplates
}

// Categories returns the distinct categories in bank order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range narrativeTemplates {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// TemplatesByCategory returns all templates in the given category.
func TemplatesByCategory(category string) []NarrativeTemplate {
	var out []NarrativeTemplate
	for _, t := range narrativeTemplates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

var narrativeTemplates = []NarrativeTemplate{
	// School scenes (1-15)
	{ID: 1, Text: "A classroom has {num1} rows of desks with {num2} desks in each row. How many desks are there in total?", Unit: "desks", Category: CategorySchool},
	{ID: 2, Text: "The teacher gives each student {num1} stickers. There are {num2} students in the class. How many stickers does the teacher hand out?", Unit: "stickers", Category: CategorySchool},
	{ID: 3, Text: "The school has {num1} classrooms and each classroom has {num2} windows. How many windows does the school have?", Unit: "windows", Category: CategorySchool},
	{ID: 4, Text: "The library has {num1} shelves with {num2} books on each shelf. How many books are in the library?", Unit: "books", Category: CategorySchool},
	{ID: 5, Text: "In art class each student uses {num1} crayons. There are {num2} students. How many crayons are used altogether?", Unit: "crayons", Category: CategorySchool},
	{ID: 6, Text: "The school choir has {num1} groups with {num2} singers in each group. How many singers are in the choir?", Unit: "singers", Category: CategorySchool},
	{ID: 7, Text: "The teacher marks {num1} worksheets every day for {num2} days. How many worksheets does she mark in total?", Unit: "worksheets", Category: CategorySchool},
	{ID: 8, Text: "The school building has {num1} floors with {num2} lamps on each floor. How many lamps are there?", Unit: "lamps", Category: CategorySchool},
	{ID: 9, Text: "A textbook has {num1} units with {num2} pages in each unit. How many pages does the textbook have?", Unit: "pages", Category: CategorySchool},
	{ID: 10, Text: "Each day {num1} classes use the playground for PE. After {num2} days, how many classes have had PE there?", Unit: "classes", Category: CategorySchool},
	{ID: 11, Text: "Each backpack holds {num1} textbooks and there are {num2} backpacks. How many textbooks are there in total?", Unit: "textbooks", Category: CategorySchool},
	{ID: 12, Text: "The cafeteria has {num1} tables and each table seats {num2} people. How many people can eat at once?", Unit: "people", Category: CategorySchool},
	{ID: 13, Text: "The teacher gives {num1} lessons a week for {num2} weeks. How many lessons is that in total?", Unit: "lessons", Category: CategorySchool},
	{ID: 14, Text: "There are {num1} rows of award certificates on the wall with {num2} in each row. How many certificates are there?", Unit: "certificates", Category: CategorySchool},
	{ID: 15, Text: "In the reading contest each student reads {num1} books and {num2} students take part. How many books are read in total?", Unit: "books", Category: CategorySchool},

	// Shopping scenes (16-30)
	{ID: 16, Text: "One pencil costs {num1} dollars. How much do {num2} pencils cost?", Unit: "dollars", Category: CategoryShopping},
	{ID: 17, Text: "A pack contains {num1} erasers. How many erasers are in {num2} packs?", Unit: "erasers", Category: CategoryShopping},
	{ID: 18, Text: "Each bag holds {num1} apples. Mom buys {num2} bags. How many apples does she buy?", Unit: "apples", Category: CategoryShopping},
	{ID: 19, Text: "A notebook costs {num1} dollars and Dad buys {num2} notebooks. How much does he pay?", Unit: "dollars", Category: CategoryShopping},
	{ID: 20, Text: "The store stacks {num1} cans in each row and builds {num2} rows. How many cans are stacked?", Unit: "cans", Category: CategoryShopping},
	{ID: 21, Text: "One box of crayons holds {num1} crayons. How many crayons are in {num2} boxes?", Unit: "crayons", Category: CategoryShopping},
	{ID: 22, Text: "Each customer buys {num1} bottles of juice and {num2} customers buy some. How many bottles are sold?", Unit: "bottles", Category: CategoryShopping},
	{ID: 23, Text: "A sheet of stamps has {num1} stamps and Grandpa buys {num2} sheets. How many stamps does he get?", Unit: "stamps", Category: CategoryShopping},
	{ID: 24, Text: "Each shelf in the toy store displays {num1} toy cars across {num2} shelves. How many toy cars are displayed?", Unit: "toy cars", Category: CategoryShopping},
	{ID: 25, Text: "One ticket costs {num1} dollars. How much do {num2} tickets cost?", Unit: "dollars", Category: CategoryShopping},
	{ID: 26, Text: "A carton holds {num1} eggs. How many eggs are in {num2} cartons?", Unit: "eggs", Category: CategoryShopping},
	{ID: 27, Text: "Each gift bag gets {num1} candies and the shop fills {num2} gift bags. How many candies are needed?", Unit: "candies", Category: CategoryShopping},
	{ID: 28, Text: "A pack of batteries has {num1} batteries. How many batteries are in {num2} packs?", Unit: "batteries", Category: CategoryShopping},
	{ID: 29, Text: "Each basket carries {num1} oranges and there are {num2} baskets. How many oranges are there?", Unit: "oranges", Category: CategoryShopping},
	{ID: 30, Text: "One roll of ribbon is {num1} meters long. How long are {num2} rolls laid end to end?", Unit: "meters", Category: CategoryShopping},

	// Food scenes (31-45)
	{ID: 31, Text: "Each plate holds {num1} dumplings and there are {num2} plates. How many dumplings are there?", Unit: "dumplings", Category: CategoryFood},
	{ID: 32, Text: "A pizza is cut into {num1} slices. How many slices are in {num2} pizzas?", Unit: "slices", Category: CategoryFood},
	{ID: 33, Text: "Each lunch box has {num1} meatballs and {num2} lunch boxes are packed. How many meatballs are packed?", Unit: "meatballs", Category: CategoryFood},
	{ID: 34, Text: "A tray holds {num1} cookies and the baker fills {num2} trays. How many cookies does the baker make?", Unit: "cookies", Category: CategoryFood},
	{ID: 35, Text: "Each cup of bubble tea uses {num1} spoonfuls of pearls. How many spoonfuls go into {num2} cups?", Unit: "spoonfuls", Category: CategoryFood},
	{ID: 36, Text: "One bunch has {num1} bananas. How many bananas are in {num2} bunches?", Unit: "bananas", Category: CategoryFood},
	{ID: 37, Text: "Each sandwich uses {num1} slices of ham and Mom makes {num2} sandwiches. How many slices of ham does she use?", Unit: "slices", Category: CategoryFood},
	{ID: 38, Text: "A box of chocolates has {num1} pieces. How many pieces are in {num2} boxes?", Unit: "pieces", Category: CategoryFood},
	{ID: 39, Text: "The cook steams {num1} buns per basket in {num2} baskets. How many buns are steamed?", Unit: "buns", Category: CategoryFood},
	{ID: 40, Text: "Each fruit skewer has {num1} strawberries and there are {num2} skewers. How many strawberries are used?", Unit: "strawberries", Category: CategoryFood},
	{ID: 41, Text: "One watermelon is cut into {num1} pieces. How many pieces come from {num2} watermelons?", Unit: "pieces", Category: CategoryFood},
	{ID: 42, Text: "Each cake is decorated with {num1} cherries. How many cherries top {num2} cakes?", Unit: "cherries", Category: CategoryFood},
	{ID: 43, Text: "A bag of rice crackers has {num1} crackers. How many crackers are in {num2} bags?", Unit: "crackers", Category: CategoryFood},
	{ID: 44, Text: "Each pot of soup serves {num1} bowls and {num2} pots are cooked. How many bowls can be served?", Unit: "bowls", Category: CategoryFood},
	{ID: 45, Text: "Each student drinks {num1} cups of milk a week. How many cups does one student drink in {num2} weeks?", Unit: "cups", Category: CategoryFood},

	// Animal scenes (46-55)
	{ID: 46, Text: "Each bird nest holds {num1} eggs and there are {num2} nests in the tree. How many eggs are there?", Unit: "eggs", Category: CategoryAnimals},
	{ID: 47, Text: "A spider has 8 legs. How many legs do {num2} spiders have?", Unit: "legs", Category: CategoryAnimals, FixedFactor1: 8},
	{ID: 48, Text: "Each fish tank has {num1} goldfish and the shop has {num2} tanks. How many goldfish are in the shop?", Unit: "goldfish", Category: CategoryAnimals},
	{ID: 49, Text: "A rabbit eats {num1} carrots a day. How many carrots does it eat in {num2} days?", Unit: "carrots", Category: CategoryAnimals},
	{ID: 50, Text: "Each doghouse has {num1} puppies and there are {num2} doghouses. How many puppies are there?", Unit: "puppies", Category: CategoryAnimals},
	{ID: 51, Text: "A hen lays {num1} eggs a week. How many eggs does she lay in {num2} weeks?", Unit: "eggs", Category: CategoryAnimals},
	{ID: 52, Text: "Each beehive has {num1} bees flying out and there are {num2} hives. How many bees fly out?", Unit: "bees", Category: CategoryAnimals},
	{ID: 53, Text: "The zoo feeds each monkey {num1} bananas. There are {num2} monkeys. How many bananas are needed?", Unit: "bananas", Category: CategoryAnimals},
	{ID: 54, Text: "Each pond has {num1} ducks and the farm has {num2} ponds. How many ducks are on the farm?", Unit: "ducks", Category: CategoryAnimals},
	{ID: 55, Text: "A cat sleeps {num1} hours a day. How many hours does it sleep in {num2} days?", Unit: "hours", Category: CategoryAnimals},

	// Sports scenes (56-65)
	{ID: 56, Text: "Each team has {num1} players and {num2} teams enter the tournament. How many players take part?", Unit: "players", Category: CategorySports},
	{ID: 57, Text: "Amy jumps rope {num1} times per set and does {num2} sets. How many jumps is that?", Unit: "jumps", Category: CategorySports},
	{ID: 58, Text: "Each relay leg is {num1} meters and the race has {num2} legs. How long is the race?", Unit: "meters", Category: CategorySports},
	{ID: 59, Text: "Ben scores {num1} points per game across {num2} games. How many points does he score?", Unit: "points", Category: CategorySports},
	{ID: 60, Text: "Each shelf in the gym holds {num1} basketballs on {num2} shelves. How many basketballs are stored?", Unit: "basketballs", Category: CategorySports},
	{ID: 61, Text: "The coach hands out {num1} bottles of water to each team. There are {num2} teams. How many bottles are handed out?", Unit: "bottles", Category: CategorySports},
	{ID: 62, Text: "Each swim lap is {num1} meters and Lily swims {num2} laps. How far does she swim?", Unit: "meters", Category: CategorySports},
	{ID: 63, Text: "Each row of the stadium seats {num1} fans and a section has {num2} rows. How many fans fit in a section?", Unit: "fans", Category: CategorySports},
	{ID: 64, Text: "Tom does {num1} push-ups every morning for {num2} mornings. How many push-ups does he do?", Unit: "push-ups", Category: CategorySports},
	{ID: 65, Text: "Each practice lasts {num1} minutes and there are {num2} practices this week. How many minutes of practice is that?", Unit: "minutes", Category: CategorySports},

	// Transport scenes (66-75)
	{ID: 66, Text: "Each bus carries {num1} passengers and {num2} buses leave the station. How many passengers leave?", Unit: "passengers", Category: CategoryTransport},
	{ID: 67, Text: "A car has 4 wheels. How many wheels do {num2} cars have?", Unit: "wheels", Category: CategoryTransport, FixedFactor1: 4},
	{ID: 68, Text: "Each train car has {num1} seats and the train pulls {num2} cars. How many seats does the train have?", Unit: "seats", Category: CategoryTransport},
	{ID: 69, Text: "The ferry makes {num1} trips a day for {num2} days. How many trips does it make?", Unit: "trips", Category: CategoryTransport},
	{ID: 70, Text: "Each parking row fits {num1} cars and the lot has {num2} rows. How many cars fit in the lot?", Unit: "cars", Category: CategoryTransport},
	{ID: 71, Text: "A bicycle bell rings {num1} times at each stop over {num2} stops. How many rings is that?", Unit: "rings", Category: CategoryTransport},
	{ID: 72, Text: "Each plane ticket uses {num1} reward points. How many points do {num2} tickets use?", Unit: "points", Category: CategoryTransport},
	{ID: 73, Text: "The delivery van drops off {num1} parcels per street on {num2} streets. How many parcels are delivered?", Unit: "parcels", Category: CategoryTransport},
	{ID: 74, Text: "Each boat holds {num1} life jackets and the dock has {num2} boats. How many life jackets are there?", Unit: "life jackets", Category: CategoryTransport},
	{ID: 75, Text: "A tram passes every {num1} minutes. How long do you wait for the {num2}th tram after one just left?", Unit: "minutes", Category: CategoryTransport},

	// Nature scenes (76-85)
	{ID: 76, Text: "Each flower has {num1} petals and {num2} flowers bloom in the garden. How many petals are there?", Unit: "petals", Category: CategoryNature},
	{ID: 77, Text: "Each branch has {num1} leaves and the sapling has {num2} branches. How many leaves does it have?", Unit: "leaves", Category: CategoryNature},
	{ID: 78, Text: "The gardener plants {num1} seeds in each pot and fills {num2} pots. How many seeds are planted?", Unit: "seeds", Category: CategoryNature},
	{ID: 79, Text: "Each cloud drops {num1} millimeters of rain and {num2} clouds pass. How much rain falls?", Unit: "millimeters", Category: CategoryNature},
	{ID: 80, Text: "A trail has {num1} markers per kilometer and is {num2} kilometers long. How many markers are on the trail?", Unit: "markers", Category: CategoryNature},
	{ID: 81, Text: "Each rock pool has {num1} starfish and there are {num2} rock pools. How many starfish are there?", Unit: "starfish", Category: CategoryNature},
	{ID: 82, Text: "Each tree row in the orchard has {num1} trees and there are {num2} rows. How many trees grow there?", Unit: "trees", Category: CategoryNature},
	{ID: 83, Text: "A snail crawls {num1} centimeters an hour. How far does it crawl in {num2} hours?", Unit: "centimeters", Category: CategoryNature},
	{ID: 84, Text: "Each bush grows {num1} berries and there are {num2} bushes. How many berries grow in total?", Unit: "berries", Category: CategoryNature},
	{ID: 85, Text: "Each wave carries {num1} shells to shore. After {num2} waves, how many shells wash ashore?", Unit: "shells", Category: CategoryNature},

	// Home scenes (86-95)
	{ID: 86, Text: "Each drawer holds {num1} pairs of socks and the dresser has {num2} drawers. How many pairs are stored?", Unit: "pairs", Category: CategoryHome},
	{ID: 87, Text: "Mom folds {num1} towels per load for {num2} loads of laundry. How many towels does she fold?", Unit: "towels", Category: CategoryHome},
	{ID: 88, Text: "Each photo album page shows {num1} photos and the album has {num2} pages. How many photos does it show?", Unit: "photos", Category: CategoryHome},
	{ID: 89, Text: "Each shelf of the bookcase holds {num1} storybooks on {num2} shelves. How many storybooks fit?", Unit: "storybooks", Category: CategoryHome},
	{ID: 90, Text: "Dad waters {num1} plants every morning for {num2} mornings. How many waterings is that?", Unit: "waterings", Category: CategoryHome},
	{ID: 91, Text: "Each pillowcase needs {num1} buttons and Grandma sews {num2} pillowcases. How many buttons does she need?", Unit: "buttons", Category: CategoryHome},
	{ID: 92, Text: "The clock chimes {num1} times each hour. How many times does it chime in {num2} hours?", Unit: "chimes", Category: CategoryHome},
	{ID: 93, Text: "Each box of tissues lasts {num1} days. How long do {num2} boxes last?", Unit: "days", Category: CategoryHome},
	{ID: 94, Text: "The family recycles {num1} bottles a week for {num2} weeks. How many bottles do they recycle?", Unit: "bottles", Category: CategoryHome},
	{ID: 95, Text: "Each window hangs {num1} wind chimes and the house has {num2} windows. How many wind chimes are there?", Unit: "wind chimes", Category: CategoryHome},

	// Holiday scenes (96-100)
	{ID: 96, Text: "Each box of mooncakes holds {num1} cakes and relatives bring {num2} boxes. How many mooncakes are there?", Unit: "mooncakes", Category: CategoryHolidays},
	{ID: 97, Text: "Each layer of the Christmas tree hangs {num1} ornaments across {num2} layers. How many ornaments hang on the tree?", Unit: "ornaments", Category: CategoryHolidays},
	{ID: 98, Text: "Each red envelope holds {num1} dollars and {num2} envelopes are prepared. How much money is needed?", Unit: "dollars", Category: CategoryHolidays},
	{ID: 99, Text: "Each party guest receives {num1} balloons and {num2} guests come. How many balloons are given out?", Unit: "balloons", Category: CategoryHolidays},
	{ID: 100, Text: "Each string of rice dumplings has {num1} dumplings and Mom buys {num2} strings. How many dumplings does she buy?", Unit: "dumplings", Category: CategoryHolidays},

	// Math concept scenes (101-150)
	// Multiple comparison: how much more is {num1}×{larger} than {num1}×{smaller}.
	{ID: 101, Text: "How much more is {larger} times {num1} than {smaller} times {num1}?", Unit: "", Category: CategoryMath, Variant: VariantComparison},
	{ID: 102, Text: "Max has {larger} times {num1} candies and Amy has {smaller} times {num1} candies. How many more candies does Max have?", Unit: "candies", Category: CategoryMath, Variant: VariantComparison},
	{ID: 103, Text: "Dad's age is {larger} times {num1} and Mom's age is {smaller} times {num1}. How many years older is Dad?", Unit: "years", Category: CategoryMath, Variant: VariantComparison},
	{ID: 104, Text: "Leo saved {larger} times {num1} dollars and his brother saved {smaller} times {num1} dollars. How much more did Leo save?", Unit: "dollars", Category: CategoryMath, Variant: VariantComparison},
	{ID: 105, Text: "Class A has {larger} times {num1} students and class B has {smaller} times {num1} students. How many more students are in class A?", Unit: "students", Category: CategoryMath, Variant: VariantComparison},
	{ID: 106, Text: "The big box holds {larger} times {num1} balls and the small box holds {smaller} times {num1} balls. How many more balls are in the big box?", Unit: "balls", Category: CategoryMath, Variant: VariantComparison},
	{ID: 107, Text: "The red rope is {larger} times {num1} centimeters and the blue rope is {smaller} times {num1} centimeters. How much longer is the red rope?", Unit: "centimeters", Category: CategoryMath, Variant: VariantComparison},
	{ID: 108, Text: "Mia ran {larger} times {num1} laps and her sister ran {smaller} times {num1} laps. How many more laps did Mia run?", Unit: "laps", Category: CategoryMath, Variant: VariantComparison},

	// Equal groups combined: the same quantity repeated a fixed number of times.
	{ID: 109, Text: "Jake has {num1} toy cars and his brother also has {num1} toy cars. How many toy cars do they have together?", Unit: "toy cars", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},
	{ID: 110, Text: "Mom bought {num1} apples and Dad also bought {num1} apples. How many apples did they buy altogether?", Unit: "apples", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},
	{ID: 111, Text: "Sam has {num1} stickers, Lily has {num1} stickers, and Emma also has {num1} stickers. How many stickers do the three have?", Unit: "stickers", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 3},
	{ID: 112, Text: "The older sister saved {num1} dollars and the younger sister also saved {num1} dollars. How much did they save together?", Unit: "dollars", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},
	{ID: 113, Text: "Team A has {num1} members, and teams B, C and D each have {num1} members too. How many members do the four teams have?", Unit: "members", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 4},
	{ID: 114, Text: "We hiked {num1} kilometers on the first day and {num1} kilometers again on the second day. How far did we hike in the two days?", Unit: "kilometers", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},
	{ID: 115, Text: "Grandma gave me {num1} candies and Grandpa also gave me {num1} candies. How many candies did I receive?", Unit: "candies", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},

	{ID: 116, Text: "Each backpack holds {num1} books and the class has {num2} times that many books. How many books does the class have?", Unit: "books", Category: CategoryMath},
	{ID: 117, Text: "The puppy eats {num1} bowls of food a day. How many bowls does it eat in {num2} days?", Unit: "bowls", Category: CategoryMath},
	{ID: 119, Text: "Each floor has {num1} stair steps. How many steps do you climb to go up {num2} floors?", Unit: "steps", Category: CategoryMath},
	{ID: 120, Text: "What is {num2} times {num1}?", Unit: "", Category: CategoryMath},

	// Reverse comparison: how much less.
	{ID: 121, Text: "How much less is {smaller} times {num1} than {larger} times {num1}?", Unit: "", Category: CategoryMath, Variant: VariantComparisonLess},
	{ID: 122, Text: "Amy has {smaller} times {num1} candies and Max has {larger} times {num1} candies. How many fewer candies does Amy have?", Unit: "candies", Category: CategoryMath, Variant: VariantComparisonLess},
	{ID: 123, Text: "The younger sister saved {smaller} times {num1} dollars and the older brother saved {larger} times {num1} dollars. How much less did she save?", Unit: "dollars", Category: CategoryMath, Variant: VariantComparisonLess},
	{ID: 124, Text: "Class B has {smaller} times {num1} students and class A has {larger} times {num1} students. How many fewer students are in class B?", Unit: "students", Category: CategoryMath, Variant: VariantComparisonLess},
	{ID: 125, Text: "The blue rope is {smaller} times {num1} centimeters and the red rope is {larger} times {num1} centimeters. How much shorter is the blue rope?", Unit: "centimeters", Category: CategoryMath, Variant: VariantComparisonLess},

	// Larger equal-group combinations.
	{ID: 126, Text: "Five friends each have {num1} marbles. How many marbles do the five of them have?", Unit: "marbles", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 5},
	{ID: 127, Text: "Six classes each have {num1} students. How many students are in the six classes?", Unit: "students", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 6},
	{ID: 128, Text: "The bakery sold {num1} loaves on Monday, {num1} on Tuesday and {num1} on Wednesday. How many loaves were sold over the three days?", Unit: "loaves", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 3},
	{ID: 129, Text: "Dad, Mom, Grandpa and Grandma each own {num1} books. How many books does the family own?", Unit: "books", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 4},
	{ID: 130, Text: "Five teams each scored {num1} points. How many points did the five teams score in total?", Unit: "points", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 5},

	// Doubling.
	{ID: 131, Text: "What is double {num1}?", Unit: "", Category: CategoryMath, Variant: VariantDouble},
	{ID: 132, Text: "Ken has {num1} dollars and wants to save up to double that. What is his goal?", Unit: "dollars", Category: CategoryMath, Variant: VariantDouble},
	{ID: 133, Text: "A rope is {num1} centimeters long. After tying on an equally long piece, how long is it?", Unit: "centimeters", Category: CategoryMath, Variant: VariantDouble},
	{ID: 134, Text: "A recipe needs {num1} spoonfuls of sugar, but we are making twice as much. How many spoonfuls do we need?", Unit: "spoonfuls", Category: CategoryMath, Variant: VariantDouble},
	{ID: 135, Text: "The basket holds {num1} apples. After adding the same number again, how many apples are in it?", Unit: "apples", Category: CategoryMath, Variant: VariantDouble},

	// More multiplication situations.
	{ID: 137, Text: "Each packet has {num1} crackers and you buy {num2} packets. How many crackers do you get?", Unit: "crackers", Category: CategoryMath},
	{ID: 138, Text: "A box holds {num1} pens. How many pens are in {num2} boxes?", Unit: "pens", Category: CategoryMath},
	{ID: 139, Text: "Each person gets {num1} candies and {num2} people share them out. How many candies are given out?", Unit: "candies", Category: CategoryMath},
	{ID: 140, Text: "A week has 7 days. How many days are in {num2} weeks?", Unit: "days", Category: CategoryMath, FixedFactor1: 7},

	// More comparison situations.
	{ID: 141, Text: "The big crate holds {larger} times {num1} balls and the small crate holds {smaller} times {num1} balls. How many more balls does the big crate hold?", Unit: "balls", Category: CategoryMath, Variant: VariantComparison},
	{ID: 142, Text: "The express train covers {larger} times {num1} kilometers an hour and the local train covers {smaller} times {num1} kilometers. How much farther does the express go each hour?", Unit: "kilometers", Category: CategoryMath, Variant: VariantComparison},
	{ID: 143, Text: "Factory A makes {larger} times {num1} parts a day and factory B makes {smaller} times {num1} parts. How many more parts does factory A make each day?", Unit: "parts", Category: CategoryMath, Variant: VariantComparison},

	{ID: 144, Text: "The small jar holds {smaller} times {num1} candies and the big jar holds {larger} times {num1} candies. How many fewer candies are in the small jar?", Unit: "candies", Category: CategoryMath, Variant: VariantComparisonLess},
	{ID: 145, Text: "The little brother walked {smaller} times {num1} steps and the big brother walked {larger} times {num1} steps. How many fewer steps did the little brother walk?", Unit: "steps", Category: CategoryMath, Variant: VariantComparisonLess},

	{ID: 146, Text: "Nora has {num1} apples and Iris has just as many. How many apples do they have together?", Unit: "apples", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},
	{ID: 147, Text: "The café sold {num1} breakfasts in the morning and {num1} more in the afternoon. How many breakfasts were sold that day?", Unit: "breakfasts", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},
	{ID: 148, Text: "You hold {num1} marbles in your left hand and {num1} in your right. How many marbles are you holding?", Unit: "marbles", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 2},
	{ID: 149, Text: "Jo jumped {num1} times on the first try, {num1} on the second and {num1} on the third. How many jumps in total?", Unit: "jumps", Category: CategoryMath, Variant: VariantCombination, FixedFactor2: 3},
	{ID: 150, Text: "Each floor has {num1} rooms and the building has {num2} floors. How many rooms are there?", Unit: "rooms", Category: CategoryMath},
}
