package vocab

// defaultWords is the built-in global catalog.
var defaultWords = []WordInput{
	{Russian: "Кот", Target: "Cat", Wrong1: "Dog", Wrong2: "White", Wrong3: "Tree"},
	{Russian: "Собака", Target: "Dog", Wrong1: "Green", Wrong2: "Animal", Wrong3: "Table"},
	{Russian: "Дом", Target: "House", Wrong1: "Building", Wrong2: "Home", Wrong3: "Roof"},
	{Russian: "Солнце", Target: "Sun", Wrong1: "Star", Wrong2: "Light", Wrong3: "Sky"},
	{Russian: "Вода", Target: "Water", Wrong1: "Liquid", Wrong2: "Ocean", Wrong3: "Rain"},
	{Russian: "Огонь", Target: "Fire", Wrong1: "Flame", Wrong2: "Heat", Wrong3: "Burn"},
	{Russian: "Земля", Target: "Earth", Wrong1: "Ground", Wrong2: "Soil", Wrong3: "World"},
	{Russian: "Воздух", Target: "Air", Wrong1: "Wind", Wrong2: "Breeze", Wrong3: "Atmosphere"},
	{Russian: "Дерево", Target: "Tree", Wrong1: "Wood", Wrong2: "Forest", Wrong3: "Leaf"},
	{Russian: "Цветок", Target: "Flower", Wrong1: "Rose", Wrong2: "Plant", Wrong3: "Bloom"},
	{Russian: "Книга", Target: "Book", Wrong1: "Page", Wrong2: "Read", Wrong3: "Library"},
	{Russian: "Ручка", Target: "Pen", Wrong1: "Pencil", Wrong2: "Write", Wrong3: "Ink"},
	{Russian: "Стол", Target: "Table", Wrong1: "Desk", Wrong2: "Wooden", Wrong3: "Chair"},
	{Russian: "Стул", Target: "Chair", Wrong1: "Seat", Wrong2: "Furniture", Wrong3: "Bench"},
	{Russian: "Окно", Target: "Window", Wrong1: "Glass", Wrong2: "View", Wrong3: "Open"},
	{Russian: "Дверь", Target: "Door", Wrong1: "Entrance", Wrong2: "Exit", Wrong3: "Handle"},
	{Russian: "Город", Target: "City", Wrong1: "Town", Wrong2: "Urban", Wrong3: "Street"},
	{Russian: "Деревня", Target: "Village", Wrong1: "Country", Wrong2: "Rural", Wrong3: "Farm"},
	{Russian: "Машина", Target: "Car", Wrong1: "Vehicle", Wrong2: "Drive", Wrong3: "Road"},
	{Russian: "Поезд", Target: "Train", Wrong1: "Railway", Wrong2: "Station", Wrong3: "Track"},
	{Russian: "Самолет", Target: "Airplane", Wrong1: "Fly", Wrong2: "Airport", Wrong3: "Wings"},
	{Russian: "Корабль", Target: "Ship", Wrong1: "Boat", Wrong2: "Sail", Wrong3: "Ocean"},
	{Russian: "Деньги", Target: "Money", Wrong1: "Cash", Wrong2: "Currency", Wrong3: "Wealth"},
	{Russian: "Работа", Target: "Work", Wrong1: "Job", Wrong2: "Office", Wrong3: "Career"},
	{Russian: "Школа", Target: "School", Wrong1: "Education", Wrong2: "Learn", Wrong3: "Teacher"},
	{Russian: "Университет", Target: "University", Wrong1: "College", Wrong2: "Study", Wrong3: "Degree"},
	{Russian: "Больница", Target: "Hospital", Wrong1: "Doctor", Wrong2: "Medicine", Wrong3: "Health"},
	{Russian: "Парк", Target: "Park", Wrong1: "Garden", Wrong2: "Walk", Wrong3: "Nature"},
	{Russian: "Река", Target: "River", Wrong1: "Stream", Wrong2: "Water", Wrong3: "Flow"},
	{Russian: "Гора", Target: "Mountain", Wrong1: "Peak", Wrong2: "Climb", Wrong3: "Hill"},
	{Russian: "Лес", Target: "Forest", Wrong1: "Woods", Wrong2: "Trees", Wrong3: "Wild"},
	{Russian: "Море", Target: "Sea", Wrong1: "Ocean", Wrong2: "Beach", Wrong3: "Wave"},
	{Russian: "Озеро", Target: "Lake", Wrong1: "Pond", Wrong2: "Water", Wrong3: "Fish"},
	{Russian: "Птица", Target: "Bird", Wrong1: "Fly", Wrong2: "Wings", Wrong3: "Feather"},
	{Russian: "Рыба", Target: "Fish", Wrong1: "Swim", Wrong2: "Water", Wrong3: "Ocean"},
	{Russian: "Змея", Target: "Snake", Wrong1: "Reptile", Wrong2: "Slither", Wrong3: "Venom"},
	{Russian: "Лошадь", Target: "Horse", Wrong1: "Animal", Wrong2: "Ride", Wrong3: "Gallop"},
	{Russian: "Корова", Target: "Cow", Wrong1: "Farm", Wrong2: "Milk", Wrong3: "Animal"},
	{Russian: "Овца", Target: "Sheep", Wrong1: "Wool", Wrong2: "Farm", Wrong3: "Animal"},
	{Russian: "Свинья", Target: "Pig", Wrong1: "Farm", Wrong2: "Pork", Wrong3: "Animal"},
	{Russian: "Курица", Target: "Chicken", Wrong1: "Bird", Wrong2: "Farm", Wrong3: "Egg"},
	{Russian: "Хлеб", Target: "Bread", Wrong1: "Bakery", Wrong2: "Wheat", Wrong3: "Loaf"},
	{Russian: "Молоко", Target: "Milk", Wrong1: "Dairy", Wrong2: "Cow", Wrong3: "White"},
	{Russian: "Сыр", Target: "Cheese", Wrong1: "Dairy", Wrong2: "Milk", Wrong3: "Yellow"},
	{Russian: "Мясо", Target: "Meat", Wrong1: "Beef", Wrong2: "Chicken", Wrong3: "Pork"},
	{Russian: "Фрукт", Target: "Fruit", Wrong1: "Apple", Wrong2: "Banana", Wrong3: "Orange"},
	{Russian: "Овощ", Target: "Vegetable", Wrong1: "Carrot", Wrong2: "Potato", Wrong3: "Tomato"},
	{Russian: "Яблоко", Target: "Apple", Wrong1: "Fruit", Wrong2: "Red", Wrong3: "Tree"},
	{Russian: "Банан", Target: "Banana", Wrong1: "Fruit", Wrong2: "Yellow", Wrong3: "Peel"},
	{Russian: "Апельсин", Target: "Orange", Wrong1: "Fruit", Wrong2: "Citrus", Wrong3: "Juice"},
}
