package persona

import "northpole/internal/models"

// RecipeBook is Mrs. Claus' rotation of shareable recipes. Picked at
// random by the actor when a recipe post rolls.
var RecipeBook = []models.Recipe{
	{
		Name:       "Mrs. Claus' Famous Gingerbread Reindeer",
		Difficulty: "Medium",
		Photo:      "/images/reindeer_HC.png",
		Ingredients: []string{
			"1 cup butter, softened", "1 cup brown sugar", "1/2 cup molasses",
			"1 egg", "3 cups all-purpose flour", "1 tsp baking soda",
			"2 tsp ground ginger", "1 tsp cinnamon", "1/2 tsp cloves",
			"Raisins or candies for eyes",
		},
		Instructions: []string{
			"In a large bowl, cream together the butter and brown sugar.",
			"Beat in the molasses and egg until well combined.",
			"In a separate bowl, whisk together the flour, baking soda, ginger, cinnamon, and cloves.",
			"Gradually add the dry ingredients to the wet ingredients and mix well.",
			"Cover the dough and chill for at least 1 hour.",
			"Preheat oven to 350°F (175°C).",
			"Roll out the dough on a floured surface and cut into reindeer shapes.",
			"Place on a baking sheet and bake for 8-10 minutes.",
			"Let cool and decorate with raisins!",
		},
		Servings: "2 dozen",
		Time:     "45 min",
	},
	{
		Name:       "Snowball Sugar Cookies",
		Difficulty: "Easy",
		Photo:      "https://images.unsplash.com/photo-1483695028997-9abb0fe9b98e?w=400&h=300&fit=crop",
		Ingredients: []string{
			"1 cup butter, softened", "1/2 cup powdered sugar", "1 tsp vanilla extract",
			"2 cups all-purpose flour", "1/4 tsp salt", "1 cup chopped pecans (optional)",
			"More powdered sugar for rolling",
		},
		Instructions: []string{
			"Preheat oven to 325°F (165°C).",
			"In a large bowl, cream the butter and 1/2 cup of powdered sugar until fluffy.",
			"Stir in the vanilla extract.",
			"In a separate bowl, whisk together the flour and salt.",
			"Gradually add the flour mixture to the butter mixture.",
			"Stir in the chopped pecans, if using.",
			"Shape the dough into 1-inch balls.",
			"Place on an ungreased baking sheet.",
			"Bake for 12-15 minutes, until the bottoms are lightly browned.",
			"Let cool for a few minutes, then roll in powdered sugar while still warm.",
		},
		Servings: "3 dozen",
		Time:     "30 min",
	},
	{
		Name:       "Reindeer Hot Cocoa",
		Difficulty: "Easy",
		Photo:      "https://images.unsplash.com/photo-1541592106381-b31e9678029f?w=400&h=300&fit=crop",
		Ingredients: []string{
			"4 cups whole milk", "1 cup heavy cream", "1 cup semi-sweet chocolate chips",
			"1/4 cup sugar (or to taste)", "1 tsp vanilla extract",
			"Whipped cream, mini marshmallows, pretzel twists, and red candies (like M&Ms) for decorating",
		},
		Instructions: []string{
			"In a medium saucepan, heat the milk and heavy cream over medium heat.",
			"Do not let it boil!",
			"Once warm, whisk in the chocolate chips and sugar.",
			"Continue whisking until the chocolate is completely melted and the mixture is smooth.",
			"Remove from heat and stir in the vanilla extract.",
			"Pour into mugs.",
			"Top with whipped cream, marshmallows, and use pretzels for 'antlers' and a red candy for a 'nose'!",
		},
		Servings: "4 mugs",
		Time:     "10 min",
	},
	{
		Name:       "Elf-Made Peppermint Bark",
		Difficulty: "Easy",
		Photo:      "https://images.unsplash.com/photo-1606913563752-7b6b70f3b1fd?w=400&h=300&fit=crop",
		Ingredients: []string{
			"12 oz dark chocolate", "12 oz white chocolate",
			"1 tsp peppermint extract", "1/2 cup crushed candy canes",
		},
		Instructions: []string{
			"Melt dark chocolate and spread on parchment-lined tray.",
			"Let set slightly, then melt white chocolate with peppermint extract.",
			"Pour over dark layer, swirl gently.",
			"Sprinkle crushed candy canes on top. Chill until firm, then break into pieces!",
		},
		Servings: "20 pieces",
		Time:     "20 min + chill",
	},
	{
		Name:       "Reindeer Chow Snack Mix",
		Difficulty: "Easy",
		Photo:      "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=400&h=300&fit=crop",
		Ingredients: []string{
			"3 cups rice cereal", "1 cup pretzel sticks", "1 cup red & green M&Ms",
			"1/2 cup peanuts", "12 oz white chocolate, melted",
		},
		Instructions: []string{
			"Mix cereal, pretzels, M&Ms, and peanuts in a large bowl.",
			"Pour melted white chocolate over and stir gently to coat.",
			"Spread on wax paper to cool. Break into clusters.",
			"Perfect for movie night with the elves!",
		},
		Servings: "8 cups",
		Time:     "15 min",
	},
	{
		Name:       "North Pole Hot Chocolate Bombs",
		Difficulty: "Hard",
		Photo:      "https://images.unsplash.com/photo-1606913563752-7b6b70f3b1fd?w=400&h=300&fit=crop",
		Ingredients: []string{
			"Silicone sphere mold", "12 oz melting chocolate", "Hot cocoa mix",
			"Mini marshmallows", "Sprinkles",
		},
		Instructions: []string{
			"Melt chocolate and coat mold halves. Chill until set.",
			"Fill one half with 1 tbsp cocoa mix + marshmallows.",
			"Seal with second half using warm plate method.",
			"Drop in warm milk and watch the magic explode!",
		},
		Servings: "6 bombs",
		Time:     "30 min + chill",
	},
	{
		Name:       "Mrs. Claus' Cranberry Orange Scones",
		Difficulty: "Medium",
		Photo:      "https://images.unsplash.com/photo-1506089670014-7a5b0a3d2a0d?w=400&h=300&fit=crop",
		Ingredients: []string{
			"2 cups flour", "1/3 cup sugar", "1 tbsp baking powder",
			"1/2 cup cold butter", "1/2 cup dried cranberries",
			"Zest of 1 orange", "3/4 cup heavy cream",
		},
		Instructions: []string{
			"Mix dry ingredients. Cut in butter until crumbly.",
			"Stir in cranberries, zest, and cream just until combined.",
			"Pat into 8-inch circle, cut into 8 wedges.",
			"Bake at 400°F for 15-18 min. Serve with clotted cream!",
		},
		Servings: "8 scones",
		Time:     "30 min",
	},
}
