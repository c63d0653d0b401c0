package game

// Narrative and advisory texts shown to the player. Commands never abort
// the session; malformed input resolves to ValidationMessage and
// well-formed but blocked actions name their obstruction.
const (
	WelcomeMessage = "A Visit from El Chupacabras!"

	GameInfo = "El chupacabras has come to suck the blood of your livestock! " +
		"Move throughout your house and collect 6 items before coming face to " +
		"face with the beast!"

	MovingInstructions = "To move to a different room type 'go south, " +
		"'go north', 'go east', or 'go west'."

	ItemInstructions = "To add an item to your inventory, type 'get item name'."

	ValidationMessage = "Please enter a valid move."

	NoRoomMessage = "There is no room in that direction."

	WinningMessage = "You see el Chupacabras!\n" +
		"You toss the goat plushie by its feet. While it's investigating it, " +
		"you squirt shampoo into its eyes, knock it out with your frying pan, " +
		"tie it up with your rope, \nand take pictures of it once it's " +
		"subdued. Luckily, you didn't have to hurt it with your machete.\n" +
		"You call Animal Control and become famous for capturing the first " +
		"live specimen of el Chupacabras. Your goats and chicken are happy.\n" +
		"Congratulations!"

	LosingMessage = "You see el Chupacabras!\n" +
		"You try to fight it, but don't have enough items to deal with it. " +
		"You manage to keep it away from your livestock, but it's not leaving " +
		"hungry.\nYou become the first human victim of el Chupacabras.\n" +
		"Game over."

	CommandPrompt = "Enter your command:"

	PlayAgainPrompt = "\nDo you want to play again? y/n"

	FarewellMessage = "Thank you for playing!"
)
